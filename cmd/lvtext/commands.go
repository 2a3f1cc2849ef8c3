// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtext/alignment"
	"github.com/katalvlaran/lvtext/editdistance"
	"github.com/katalvlaran/lvtext/graphemes"
	"github.com/katalvlaran/lvtext/maxmatch"
	"github.com/katalvlaran/lvtext/metrics"
)

var errNoDictionary = errors.New("lvtext: no dictionary: use --dict, --word or --redis-addr/--redis-key")

func newDistanceCmd(root *rootOptions) *cobra.Command {
	opts := editdistance.DefaultOptions()
	var twoRows bool
	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: "Print the edit distance between two strings",
		Args:  cobra.ExactArgs(2),
	}
	cmd.Flags().IntVar(&opts.SubstitutionCost, "sub-cost", opts.SubstitutionCost, "substitution cost")
	cmd.Flags().BoolVar(&twoRows, "two-rows", false, "use O(len(B)) memory")
	cmd.RunE = root.run("distance", func(cmd *cobra.Command, args []string) error {
		if twoRows {
			opts.MemoryMode = editdistance.TwoRows
		}
		d, err := editdistance.Distance[string](graphemes.New(args[0]), graphemes.New(args[1]), &opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), d)

		return err
	})

	return cmd
}

func newAlignCmd(root *rootOptions) *cobra.Command {
	var (
		subCost     int
		placeholder string
	)
	cmd := &cobra.Command{
		Use:   "align A B",
		Short: "Print an optimal alignment of two strings, one per line",
		Args:  cobra.ExactArgs(2),
	}
	cmd.Flags().IntVar(&subCost, "sub-cost", 1, "substitution cost")
	cmd.Flags().StringVar(&placeholder, "placeholder", graphemes.Space, "single grapheme used for gaps")
	cmd.RunE = root.run("align", func(cmd *cobra.Command, args []string) error {
		if graphemes.New(placeholder).Len() != 1 {
			return fmt.Errorf("lvtext: placeholder %q must be exactly one grapheme", placeholder)
		}
		top, bottom, err := alignment.Strings[string](graphemes.New(args[0]), graphemes.New(args[1]), subCost, placeholder)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", graphemes.FromSlice(top), graphemes.FromSlice(bottom))

		return err
	})

	return cmd
}

func newSegmentCmd(root *rootOptions) *cobra.Command {
	var (
		dictPath  string
		words     []string
		redisAddr string
		redisKey  string
	)
	cmd := &cobra.Command{
		Use:   "segment TEXT",
		Short: "Split unspaced text into dictionary words (max-match)",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&dictPath, "dict", "", "word list file, one word per line")
	cmd.Flags().StringArrayVar(&words, "word", nil, "dictionary word (repeatable)")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", os.Getenv(envRedisAddr), "redis address holding the dictionary set ($"+envRedisAddr+")")
	cmd.Flags().StringVar(&redisKey, "redis-key", os.Getenv(envRedisKey), "redis set key ($"+envRedisKey+")")
	cmd.RunE = root.run("segment", func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary(cmd, root, dictPath, words, redisAddr, redisKey)
		if err != nil {
			return err
		}
		out, err := maxmatch.SegmentContext(cmd.Context(), graphemes.New(args[0]), dict)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

		return err
	})

	return cmd
}

// loadDictionary merges every configured source into one Set.
func loadDictionary(cmd *cobra.Command, root *rootOptions, path string, words []string, redisAddr, redisKey string) (*maxmatch.Set, error) {
	if path == "" && len(words) == 0 && redisAddr == "" {
		return nil, errNoDictionary
	}

	dict := maxmatch.NewSet(words...)
	if path != "" {
		fromFile, err := maxmatch.LoadFile(path)
		if err != nil {
			return nil, err
		}
		root.logger.Info("dictionary loaded", "source", path, "words", fromFile.Len())
		dict.Merge(fromFile)
	}
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		fromRedis, err := maxmatch.LoadRedis(cmd.Context(), client, redisKey)
		if err != nil {
			return nil, err
		}
		root.logger.Info("dictionary loaded", "source", redisAddr, "key", redisKey, "words", fromRedis.Len())
		dict.Merge(fromRedis)
	}

	return dict, nil
}

func newWERCmd(root *rootOptions) *cobra.Command {
	var report bool
	cmd := &cobra.Command{
		Use:   "wer REFERENCE HYPOTHESIS",
		Short: "Print word error rate and word accuracy",
		Args:  cobra.ExactArgs(2),
	}
	cmd.Flags().BoolVar(&report, "report", false, "also print substitution/insertion/deletion counts")
	cmd.RunE = root.run("wer", func(cmd *cobra.Command, args []string) error {
		ref, hyp := graphemes.New(args[0]), graphemes.New(args[1])
		rep, err := metrics.WordErrors(ref, hyp)
		if err != nil {
			return err
		}
		acc, err := metrics.WordAccuracy(ref, hyp)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(w, "wer=%.4f accuracy=%.4f\n", rep.WER, acc); err != nil {
			return err
		}
		if report {
			_, err = fmt.Fprintf(w, "substitutions=%d insertions=%d deletions=%d reference_words=%d\n",
				rep.Substitutions, rep.Insertions, rep.Deletions, rep.ReferenceWords)
		}

		return err
	})

	return cmd
}
