package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/repository"
	"n5_vocab_study/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed [DATASET.json]",
	Short: "Load a dictionary and example sentence dataset",
	Long: `Upserts every dictionary entry by its Bangla headword and replaces the
example sentence corpus, in one transaction. The file has the same shape as
GET /api/dataset: {"dictionary": {...}, "exampleSentences": [...]}.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		ds, err := readDataset(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		logger := slog.Default()
		db, closeDB, err := openDB(logger)
		if err != nil {
			return err
		}
		defer closeDB()

		datasets := service.NewDatasetService(db, repository.NewGormWordRepository(), repository.NewGormSentenceRepository(), logger)
		res, err := datasets.Import(cmd.Context(), ds)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words and %d example sentences.\n", res.Words, res.Sentences)
		return nil
	},
}

// readDataset はデータセットの JSON を読みます。未知のフィールドはエラー。
func readDataset(r io.Reader) (*model.Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var ds model.Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}
