package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/langportal-backend/internal/service/catalog"
)

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.json|->",
		Short: "Import word groups from a JSON seed document",
		Long: `Import word groups from a JSON seed document of the form

  {"groups": [{"name": "Animals", "words": [{"source": "chien", "target": "dog"}]}]}

Existing words and groups are reused, so seeding is repeatable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readSeed(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			pool, err := e.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			importer := catalog.NewImporter(e.logger, word.New(pool), postgres.NewTxManager(pool))
			res, err := importer.Import(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d groups, %d words\n", res.Groups, res.Words)
			return nil
		},
	}
}

// readSeed decodes the seed document at path, or stdin when path is "-".
func readSeed(stdin io.Reader, path string) (catalog.ImportInput, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return catalog.ImportInput{}, fmt.Errorf("open seed file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in catalog.ImportInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return catalog.ImportInput{}, fmt.Errorf("decode seed %s: %w", path, err)
	}
	return in, nil
}
