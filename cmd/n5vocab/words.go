package main

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/repository"
	"n5_vocab_study/internal/service"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Query the dictionary the same way GET /api/words does",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lesson, _ := cmd.Flags().GetString("lesson")
		search, _ := cmd.Flags().GetString("search")

		logger := slog.Default()
		db, closeDB, err := openDB(logger)
		if err != nil {
			return err
		}
		defer closeDB()

		words := service.NewWordService(db, repository.NewGormWordRepository(), logger)
		dict, err := words.QueryWords(cmd.Context(), &model.WordQuery{Lesson: lesson, Search: search})
		if err != nil {
			return err
		}
		printWords(cmd.OutOrStdout(), dict)
		return nil
	},
}

func init() {
	wordsCmd.Flags().String("lesson", "", "only words from this lesson")
	wordsCmd.Flags().String("search", "", "substring search, or a comma-separated list of exact headwords")
}

// printWords は辞書を見出し語順の表にします。
// ベンガル文字と日本語が混ざるので幅は runewidth で数える。
func printWords(w io.Writer, dict model.Dictionary) {
	tbl := table.New("Bangla", "Japanese", "English", "Category", "Lesson").
		WithWriter(w).
		WithWidthFunc(runewidth.StringWidth)
	for _, term := range dict.Terms() {
		entry := dict[term]
		tbl.AddRow(term, entry.Meaning, entry.English, entry.Category, strconv.Itoa(entry.Lesson))
	}
	tbl.Print()
}
