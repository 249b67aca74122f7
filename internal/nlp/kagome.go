package nlp

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// kagomeEngine segments Japanese text with the kagome morphological
// analyzer. Person segments are built from runs of consecutive tokens
// whose part-of-speech features mark them as person proper nouns
// (名詞/固有名詞/人名), so family name + given name collapse into one span.
type kagomeEngine struct {
	tok *tokenizer.Tokenizer
}

func newKagomeEngine(modelName string) (*kagomeEngine, error) {
	var tok *tokenizer.Tokenizer
	var err error
	switch modelName {
	case "ipa":
		tok, err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	case "uni":
		tok, err = tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
	default:
		return nil, fmt.Errorf("unknown segmentation model %q (supported: ipa, uni)", modelName)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing kagome tokenizer: %w", err)
	}
	return &kagomeEngine{tok: tok}, nil
}

// Segment implements Engine.
func (e *kagomeEngine) Segment(text string) []Segment {
	var segments []Segment
	open := -1 // start of the person run in progress, -1 if none
	end := 0

	for _, token := range e.tok.Tokenize(text) {
		start := token.Position
		if isPersonToken(token.Features()) {
			if open >= 0 && start == end {
				end = start + len(token.Surface)
				continue
			}
			if open >= 0 {
				segments = append(segments, Segment{Category: CategoryPerson, Start: open, End: end})
			}
			open = start
			end = start + len(token.Surface)
			continue
		}
		if open >= 0 {
			segments = append(segments, Segment{Category: CategoryPerson, Start: open, End: end})
			open = -1
		}
	}
	if open >= 0 {
		segments = append(segments, Segment{Category: CategoryPerson, Start: open, End: end})
	}
	return segments
}

// isPersonToken reports whether the token features identify a person proper
// noun. Both the IPA and UniDic feature layouts put 名詞/固有名詞/人名 in
// the first three positions.
func isPersonToken(features []string) bool {
	return len(features) >= 3 &&
		features[0] == "名詞" &&
		features[1] == "固有名詞" &&
		features[2] == "人名"
}
