package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vocab-keeper/internal/client"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
	"github.com/MKhiriev/go-vocab-keeper/internal/validators"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// filterOptions maps the card filter onto command flags.
type filterOptions struct {
	collection string
	types      []string
	tags       []string
	search     string
}

func (f *filterOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.collection, "collection", "", "only cards of this collection")
	cmd.Flags().StringSliceVar(&f.types, "type", nil, "only cards of these types (noun, verb, phrase)")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "only cards carrying any of these tags")
	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive match on word or definition")
}

func (f *filterOptions) filter() models.CardFilter {
	filter := models.CardFilter{
		Collection: f.collection,
		Tags:       f.tags,
		Search:     f.search,
	}
	for _, t := range f.types {
		filter.Types = append(filter.Types, models.CardType(strings.ToLower(t)))
	}
	return filter
}

// readCardsFile reads and validates an exchange file.
func readCardsFile(ctx context.Context, path string) (models.CardsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.CardsFile{}, err
	}

	var file models.CardsFile
	if err = json.Unmarshal(data, &file); err != nil {
		return models.CardsFile{}, fmt.Errorf("decode %s: %w", path, err)
	}

	validator, err := validators.NewCardValidator()
	if err != nil {
		return models.CardsFile{}, err
	}
	if err = validator.Validate(ctx, file); err != nil {
		return models.CardsFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	var (
		replace    bool
		allowDupes bool
	)

	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Add the cards of an exchange file to the local store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readCardsFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return opts.run(cmd.Context(), func(ctx context.Context, _ *client.App, services *service.ClientServices) error {
				var result models.ImportResult
				if replace {
					result, err = services.CardService.ReplaceAllCards(ctx, file.Cards)
				} else {
					result, err = services.CardService.ImportCards(ctx, file.Cards, !allowDupes)
				}
				if err != nil {
					return err
				}

				printImportResult(cmd, result)
				return nil
			})
		},
	}

	command.Flags().BoolVar(&replace, "replace", false, "delete all local cards first")
	command.Flags().BoolVar(&allowDupes, "allow-duplicates", false, "do not skip words that already exist")

	return command
}

func printImportResult(cmd *cobra.Command, result models.ImportResult) {
	out := cmd.OutOrStdout()
	color.New(color.FgGreen).Fprintf(out, "Imported %d of %d cards.\n", result.Imported, result.Total)
	if result.Duplicates > 0 {
		color.New(color.FgYellow).Fprintf(out, "Skipped %d duplicates: %s\n",
			result.Duplicates, strings.Join(result.DuplicateWords, ", "))
	}
	if result.Errors > 0 {
		color.New(color.FgRed).Fprintf(out, "%d cards could not be imported, see the log.\n", result.Errors)
	}
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	var filter filterOptions

	command := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the matching cards to an exchange file without progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, _ *client.App, services *service.ClientServices) error {
				file, err := services.CardService.ExportCards(ctx, filter.filter())
				if err != nil {
					return err
				}

				data, err := json.MarshalIndent(file, "", "  ")
				if err != nil {
					return err
				}
				if err = os.WriteFile(args[0], data, 0o644); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cards to %s.\n", len(file.Cards), args[0])
				return nil
			})
		},
	}
	filter.register(command)

	return command
}

func newPublishCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <file>",
		Short: "Upload the cards of an exchange file to the shared remote corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readCardsFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return opts.run(cmd.Context(), func(ctx context.Context, _ *client.App, services *service.ClientServices) error {
				stored, err := services.CardService.PublishCards(ctx, file.Cards)
				if err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Published %d cards.\n", len(stored))
				return nil
			})
		},
	}
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var filter filterOptions

	command := &cobra.Command{
		Use:   "list",
		Short: "List local cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, _ *client.App, services *service.ClientServices) error {
				cards, err := services.CardService.Query(ctx, filter.filter())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tWORD\tDEFINITION\tTYPE\tSCORE\tVIEWS")
				for _, c := range cards {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n", c.ID, c.Word, c.Definition, c.Type, c.CardScore, c.ViewCount)
				}
				return w.Flush()
			})
		},
	}
	filter.register(command)

	return command
}

func newPracticeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "practice <card-id> <score-delta>",
		Short: "Record an answer for a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("card id: %w", err)
			}
			scoreDelta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("score delta: %w", err)
			}

			return opts.run(cmd.Context(), func(ctx context.Context, _ *client.App, services *service.ClientServices) error {
				card, err := services.CardService.RecordPractice(ctx, cardID, scoreDelta)
				if err != nil {
					return err
				}

				c := color.New(color.FgGreen)
				if scoreDelta < 0 {
					c = color.New(color.FgRed)
				}
				c.Fprintf(cmd.OutOrStdout(), "%s: score %d, views %d\n", card.Word, card.CardScore, card.ViewCount)
				return nil
			})
		},
	}
}

func newStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the local cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, _ *client.App, services *service.ClientServices) error {
				stats, err := services.CardService.Stats(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				bold := color.New(color.Bold)
				bold.Fprintf(out, "Cards: %d\n", stats.TotalCards)
				for _, t := range models.CardTypes {
					fmt.Fprintf(out, "  %s: %d\n", t, stats.ByType[t])
				}
				fmt.Fprintf(out, "Collections: %s\n", joinOrNone(stats.Collections))
				fmt.Fprintf(out, "Tags: %s\n", joinOrNone(stats.Tags))
				return nil
			})
		},
	}
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
