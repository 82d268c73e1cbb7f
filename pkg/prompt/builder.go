// Package prompt は構造化された生成オプションを自然文プロンプトへ
// 組み立てる純粋な文字列処理を提供します。外部依存はありません。
package prompt

import (
	"fmt"
	"strings"
)

// RestoreDefault は restore_image でプロンプト未指定時に使う定型文です。
const RestoreDefault = "Restore this old or damaged photo. Remove scratches, repair damage, " +
	"improve clarity and color balance while preserving the original subject and composition."

// iconStyles はアイコンの画風ごとの描写句です。
var iconStyles = map[string]string{
	"flat":    "flat design, simple shapes, solid colors",
	"3d":      "3D rendered, soft shadows, glossy surfaces",
	"outline": "outline style, clean thin strokes, minimal fill",
	"pixel":   "pixel art, crisp 8-bit aesthetic",
}

// iconBackgrounds は背景指定ごとの描写句です。
var iconBackgrounds = map[string]string{
	"transparent": "on a transparent background",
	"white":       "on a plain white background",
	"colored":     "on a complementary colored background",
}

// Icon はアイコン生成用のプロンプトを組み立てます。
// 未知の style / background は黙って無視し、説明だけで成立させます。
func Icon(description, style, background string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A single app icon of %s", description)
	if s, ok := iconStyles[style]; ok {
		b.WriteString(", ")
		b.WriteString(s)
	}
	if bg, ok := iconBackgrounds[background]; ok {
		b.WriteString(", ")
		b.WriteString(bg)
	}
	b.WriteString(", centered, no text")
	return b.String()
}

var patternTypes = map[string]string{
	"seamless":  "a seamless repeating pattern",
	"geometric": "a geometric tiling pattern",
	"organic":   "an organic flowing pattern",
	"abstract":  "an abstract decorative pattern",
}

var patternDensities = map[string]string{
	"sparse": "sparse composition with generous spacing",
	"medium": "balanced medium density",
	"dense":  "dense tightly packed composition",
}

// Pattern はパターン生成用のプロンプトを組み立てます。
func Pattern(description, patternType, density string) string {
	typ, ok := patternTypes[patternType]
	if !ok {
		typ = patternTypes["seamless"]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s of %s", typ, description)
	if d, ok := patternDensities[density]; ok {
		b.WriteString(", ")
		b.WriteString(d)
	}
	b.WriteString(", suitable for tiling, edge-to-edge")
	return b.String()
}

var diagramTypes = map[string]string{
	"flowchart":    "a clean flowchart diagram",
	"mindmap":      "a mind map diagram radiating from a central node",
	"architecture": "a software architecture diagram with labeled components",
	"network":      "a network topology diagram",
	"timeline":     "a horizontal timeline diagram",
}

var diagramLabels = map[string]string{
	"minimal":  "with short minimal labels",
	"detailed": "with detailed descriptive labels",
	"none":     "without any text labels",
}

// Diagram は図解生成用のプロンプトを組み立てます。
func Diagram(description, diagramType, labelStyle string) string {
	typ, ok := diagramTypes[diagramType]
	if !ok {
		typ = diagramTypes["flowchart"]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s illustrating %s", typ, description)
	if l, ok := diagramLabels[labelStyle]; ok {
		b.WriteString(", ")
		b.WriteString(l)
	}
	b.WriteString(", white background, high contrast, professional style")
	return b.String()
}

// sequencePhrases は連続画像のタイプごとのステップ定型句です。
var sequencePhrases = map[string]string{
	"story":    "scene %d of %d in a visual story",
	"process":  "step %d of %d in a process",
	"tutorial": "step %d of %d in an illustrated tutorial",
	"timeline": "moment %d of %d on a timeline",
}

// Story はステップ番号付きの連続画像プロンプトを組み立てます。
// step は 1 始まりで、2枚目以降には直前からの連続性を促す句を足します。
func Story(base string, step, total int, sequenceType string) string {
	phrase, ok := sequencePhrases[sequenceType]
	if !ok {
		phrase = sequencePhrases["story"]
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString(", ")
	fmt.Fprintf(&b, phrase, step, total)
	if step > 1 {
		b.WriteString(", continuing naturally from the previous image, consistent style and characters")
	}
	return b.String()
}
