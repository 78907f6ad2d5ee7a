package main

import (
	"fmt"
	"strings"

	opencc "github.com/gocconv/opencc-go"
	"github.com/gocconv/opencc-go/pkg/conversion"
	"github.com/gocconv/opencc-go/pkg/dict"
)

func main() {
	fmt.Println("=== OpenCC-Go Demo ===")

	fmt.Println("\n1. Basic dictionary conversion:")
	basicDemo()

	fmt.Println("\n2. Multi-value dictionary (one-to-many):")
	multiValueDemo()

	fmt.Println("\n3. Ambiguity-window segmentation:")
	segmentationDemo()

	fmt.Println("\n4. Multi-stage conversion chain:")
	chainDemo()

	fmt.Println("\n5. Dictionary group (selector over alternatives):")
	groupDemo()

	fmt.Println("\n6. Trie-backed dictionary with LRU caching:")
	trieCacheDemo()
}

func lexiconOf(pairs ...string) *dict.Lexicon {
	lexicon := dict.NewLexicon()
	for i := 0; i+1 < len(pairs); i += 2 {
		lexicon.Add(dict.NewSingleEntry(pairs[i], pairs[i+1]))
	}
	return lexicon
}

func oneStageConverter(name string, d dict.Dict) *opencc.Converter {
	group := dict.NewGroup([]dict.Dict{d})
	chain := conversion.NewChain([]*dict.Group{group})
	return opencc.NewConverter(name, chain)
}

func basicDemo() {
	lexicon := lexiconOf("简体", "簡體", "汉字", "漢字")
	d := dict.NewTextDict(lexicon)
	converter := oneStageConverter("basic", d)

	input := "简体汉字"
	result, err := converter.ConvertString(input)
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	fmt.Printf("  %s -> %s\n", input, result)
}

func multiValueDemo() {
	lexicon := dict.NewLexicon()
	lexicon.Add(dict.NewMultiEntry("发", []string{"髪", "發"}))
	lexicon.Add(dict.NewSingleEntry("头发", "頭髪"))
	lexicon.Sort()
	d := dict.NewTextDict(lexicon)
	converter := oneStageConverter("multi", d)

	input := "头发"
	result, err := converter.ConvertString(input)
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	fmt.Printf("  %s -> %s (longest key wins over the single-character entry)\n", input, result)
}

func segmentationDemo() {
	lexicon := lexiconOf("简体中文", "簡體中文", "中文", "中文轉換")
	d := dict.NewTextDict(lexicon)
	converter := oneStageConverter("segment", d)

	input := "简体中文转换"
	result, err := converter.ConvertString(input)
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	fmt.Printf("  %s -> %s\n", input, result)
	fmt.Println("  (the ambiguity scanner widens its window only where \"简体中文\" and \"中文\" overlap)")
}

func chainDemo() {
	lexicon1 := lexiconOf("a", "b")
	d1 := dict.NewTextDict(lexicon1)
	lexicon2 := lexiconOf("b", "c")
	d2 := dict.NewTextDict(lexicon2)

	chain := conversion.NewChain([]*dict.Group{
		dict.NewGroup([]dict.Dict{d1}),
		dict.NewGroup([]dict.Dict{d2}),
	})
	converter := opencc.NewConverter("chain", chain)

	input := "a"
	result, err := converter.ConvertString(input)
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	fmt.Printf("  stage 1: a -> b, stage 2: b -> c\n")
	fmt.Printf("  %s -> %s\n", input, result)
}

func groupDemo() {
	taiwan := dict.NewTextDict(lexiconOf("簡體", "簡體（台灣）"))
	hongkong := dict.NewTextDict(lexiconOf("簡體", "簡體（香港）"))
	group := dict.NewGroup([]dict.Dict{taiwan, hongkong})
	chain := conversion.NewChain([]*dict.Group{group})
	converter := opencc.NewConverter("group", chain)

	input := "簡體"
	for _, locale := range []struct {
		name string
		idx  int
	}{{"Taiwan", 0}, {"Hong Kong", 1}} {
		group.SetCurrent(locale.idx)
		result, err := converter.ConvertString(input)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			return
		}
		fmt.Printf("  [%s] %s -> %s\n", locale.name, input, result)
	}
}

func trieCacheDemo() {
	lexicon := lexiconOf("计算机", "計算機", "计算", "計算", "机器", "機器")
	trie := dict.NewTrieDict(lexicon)
	cached := dict.NewCachingDict(trie, 128)
	converter := oneStageConverter("trie-cache", cached)

	inputs := []string{"计算机", "计算机计算机", "机器"}
	for _, input := range inputs {
		result, err := converter.ConvertString(input)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}
		fmt.Printf("  %s -> %s\n", input, result)
	}
	fmt.Println(strings.Repeat("  ", 1) + "(repeated prefixes above are served from the LRU cache after the first walk)")
}
