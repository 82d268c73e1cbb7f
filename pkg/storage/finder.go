package storage

import (
	"os"
	"path/filepath"

	"github.com/yersonargotev/nanobana/pkg/domain"
)

// Finder はユーザー指定のファイル名を決まった候補ディレクトリ群から探します。
type Finder struct {
	dirs []string
}

// NewFinder は候補ディレクトリを優先順に組み立てます。
// カレントディレクトリ → 出力ディレクトリ → ~/Downloads → ~/Desktop → ~/Pictures
// の順で、取得できなかったものは黙って候補から外れます。
func NewFinder(outputDir string) *Finder {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if outputDir != "" {
		dirs = append(dirs, outputDir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Pictures"),
		)
	}
	return &Finder{dirs: dirs}
}

// NewFinderWithDirs はテストや特殊構成のために候補を直接指定します。
func NewFinderWithDirs(dirs []string) *Finder {
	return &Finder{dirs: dirs}
}

// Find は参照を解決します。絶対パスはそのまま存在確認し、相対参照は
// 候補ディレクトリを順に探して最初の一致を返します。見つからない場合、
// 実際に探索したディレクトリ一覧を診断用に返します。
func (f *Finder) Find(reference string) domain.FileSearchResult {
	if filepath.IsAbs(reference) {
		if fileExists(reference) {
			return domain.FileSearchResult{Found: true, Path: reference}
		}
		return domain.FileSearchResult{Searched: []string{filepath.Dir(reference)}}
	}

	searched := make([]string, 0, len(f.dirs))
	for _, dir := range f.dirs {
		searched = append(searched, dir)
		candidate := filepath.Join(dir, reference)
		if fileExists(candidate) {
			return domain.FileSearchResult{Found: true, Path: candidate, Searched: searched}
		}
	}
	return domain.FileSearchResult{Searched: searched}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
