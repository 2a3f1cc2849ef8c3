// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"

	"github.com/katalvlaran/lvtext/alignment"
	"github.com/katalvlaran/lvtext/editdistance"
	"github.com/katalvlaran/lvtext/graphemes"
)

// ErrEmptyReference is returned when the reference sentence is empty.
var ErrEmptyReference = errors.New("metrics: undefined rate: empty reference")

// Report breaks a word error rate into its edit operations.
type Report struct {
	WER            float64
	Substitutions  int
	Insertions     int
	Deletions      int
	ReferenceWords int
}

// WordErrorRate returns (insertions + deletions + substitutions) / len(actual words).
func WordErrorRate(actual, predicted graphemes.Graphemes) (float64, error) {
	if actual.Len() == 0 {
		return 0, ErrEmptyReference
	}
	ref := actual.Words()
	d, err := editdistance.Distance[string](ref, predicted.Words(), nil)
	if err != nil {
		return 0, err
	}

	return float64(d) / float64(ref.Len()), nil
}

// WordAccuracy returns 1 − WordErrorRate.
func WordAccuracy(actual, predicted graphemes.Graphemes) (float64, error) {
	wer, err := WordErrorRate(actual, predicted)
	if err != nil {
		return 0, err
	}

	return 1 - wer, nil
}

// WordErrors aligns the two word sequences and counts each kind of error.
// Report.WER equals WordErrorRate for the same inputs.
func WordErrors(actual, predicted graphemes.Graphemes) (Report, error) {
	if actual.Len() == 0 {
		return Report{}, ErrEmptyReference
	}
	ref := actual.Words()
	ops, err := alignment.Operations[string](ref, predicted.Words(), 1)
	if err != nil {
		return Report{}, err
	}

	sum := alignment.Summarize(ops)

	return Report{
		WER:            float64(sum.Errors()) / float64(ref.Len()),
		Substitutions:  sum.Substitutions,
		Insertions:     sum.Insertions,
		Deletions:      sum.Deletions,
		ReferenceWords: ref.Len(),
	}, nil
}

// CharacterErrorRate is the grapheme-level analogue of WordErrorRate.
func CharacterErrorRate(actual, predicted graphemes.Graphemes) (float64, error) {
	if actual.Len() == 0 {
		return 0, ErrEmptyReference
	}
	d, err := editdistance.Distance[string](actual, predicted, nil)
	if err != nil {
		return 0, err
	}

	return float64(d) / float64(actual.Len()), nil
}
