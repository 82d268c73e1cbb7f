package prompt

import "log/slog"

// variationSuffixes は変化カテゴリごとの2つの定型句です。
// 各カテゴリはちょうど2つのバリエーションへ展開されます。
var variationSuffixes = map[string][2]string{
	"lighting": {"dramatic lighting", "soft lighting"},
	"color":    {"vibrant colors", "muted colors"},
	"mood":     {"cheerful mood", "mysterious mood"},
	"angle":    {"wide angle view", "close-up view"},
}

// Expand はベースプロンプトをスタイルと変化カテゴリで展開し、
// 順序付きの具体的なプロンプト列を返します。
//
//   - スタイル指定: 入力順に ", {style} style" を付与した1件ずつを生成
//   - 変化カテゴリ指定: ここまでの蓄積リスト（無ければベース1件）の各要素に
//     対し、認識できたカテゴリごとに2つの定型句バリエーションを生成します。
//     このステップは蓄積リストを置き換えます（スタイルとの積、和ではない）。
//   - どちらも無く count > 1 なら同一プロンプトを count 回複製
//   - 蓄積リストが count を超える場合は先頭から count 件に切り詰め
//
// 空のリストは決して返しません。最後まで何も積めなければ [base] です。
func Expand(base string, styles, variations []string, count int) []string {
	var acc []string

	for _, style := range styles {
		acc = append(acc, base+", "+style+" style")
	}

	if len(variations) > 0 {
		seeds := acc
		if len(seeds) == 0 {
			seeds = []string{base}
		}
		var expanded []string
		for _, seed := range seeds {
			for _, category := range variations {
				suffixes, ok := variationSuffixes[category]
				if !ok {
					// 未知のカテゴリはエラーにせず読み飛ばす
					slog.Debug("未知の変化カテゴリを無視します", "category", category)
					continue
				}
				expanded = append(expanded, seed+", "+suffixes[0], seed+", "+suffixes[1])
			}
		}
		acc = expanded
	}

	if len(acc) == 0 && count > 1 {
		acc = make([]string, count)
		for i := range acc {
			acc[i] = base
		}
	}

	if count > 0 && len(acc) > count {
		acc = acc[:count]
	}

	if len(acc) == 0 {
		return []string{base}
	}
	return acc
}
