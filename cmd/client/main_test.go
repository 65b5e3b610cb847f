package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vocab-keeper/internal/app"
	"github.com/MKhiriev/go-vocab-keeper/internal/utils"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// cli runs the client commands against a database in a temporary directory
// without a remote store.
type cli struct {
	dir string
}

func newCLI(t *testing.T) cli {
	t.Helper()
	t.Setenv("ADAPTER_ADDRESS", "")
	t.Setenv("ADAPTER_ACCESS_TOKEN", "")
	return cli{dir: t.TempDir()}
}

func (c cli) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args,
		"--db", filepath.Join(c.dir, "cards.db"),
		"--log-file", filepath.Join(c.dir, "client.log"),
	))

	err := root.Execute()
	return out.String(), err
}

func (c cli) writeCardsFile(t *testing.T, name string, cards ...models.Card) string {
	t.Helper()

	data, err := json.Marshal(models.CardsFile{Version: models.CardsFileVersion, Cards: cards})
	require.NoError(t, err)

	path := filepath.Join(c.dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := newCLI(t).run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: N/A")
}

func TestImportExportStats(t *testing.T) {
	c := newCLI(t)
	file := c.writeCardsFile(t, "a1.json",
		models.Card{Word: "der Hund", Definition: "dog", Type: models.CardTypeNoun, Collection: "Animals", Tags: []string{"a1"}},
		models.Card{Word: "gehen", Definition: "to go", Type: models.CardTypeVerb, Tags: []string{"a1"}},
	)

	out, err := c.run(t, "", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 of 2 cards.")

	out, err = c.run(t, "", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 of 2 cards.")
	assert.Contains(t, out, "Skipped 2 duplicates: der Hund, gehen")

	out, err = c.run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Cards: 2")
	assert.Contains(t, out, "noun: 1")
	assert.Contains(t, out, "phrase: 0")
	assert.Contains(t, out, "Collections: Animals")
	assert.Contains(t, out, "Tags: a1")

	exported := filepath.Join(c.dir, "animals.json")
	_, err = c.run(t, "", "export", exported, "--collection", "Animals")
	require.NoError(t, err)

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	var file2 models.CardsFile
	require.NoError(t, json.Unmarshal(data, &file2))
	require.Len(t, file2.Cards, 1)
	assert.Equal(t, "der Hund", file2.Cards[0].Word)
	assert.Zero(t, file2.Cards[0].ID)
}

func TestImport_RejectsInvalidFile(t *testing.T) {
	c := newCLI(t)
	file := c.writeCardsFile(t, "bad.json", models.Card{Word: "kaputt"})

	_, err := c.run(t, "", "import", file)
	assert.Error(t, err)
}

func TestPracticeAndList(t *testing.T) {
	c := newCLI(t)
	file := c.writeCardsFile(t, "cards.json", models.Card{Word: "der Hund", Definition: "dog", Type: models.CardTypeNoun})
	_, err := c.run(t, "", "import", file)
	require.NoError(t, err)

	out, err := c.run(t, "", "practice", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "der Hund: score 2, views 1")

	out, err = c.run(t, "", "list", "--search", "HUND")
	require.NoError(t, err)
	assert.Contains(t, out, "der Hund")

	_, err = c.run(t, "", "practice", "one", "2")
	assert.Error(t, err)
}

func TestMigrate_NothingToMigrate(t *testing.T) {
	out, err := newCLI(t).run(t, "", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "No local progress to migrate.")
}

// remoteArgs starts a remote store that knows "der Hund" as card 10 and
// returns the flags that point the client at it.
func remoteArgs(t *testing.T, upserted *[]models.ProgressRecord) []string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/cards/ids":
			utils.WriteJSON(w, []models.CardRef{{ID: 10, Word: "der Hund"}}, http.StatusOK)
		case "/api/progress/upsert":
			if err := json.NewDecoder(r.Body).Decode(upserted); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		case "/api/health":
			w.WriteHeader(http.StatusOK)
		default:
			utils.WriteJSON(w, []any{}, http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)

	token, err := utils.GenerateJWTToken("go-vocab-keeper", "user-1", time.Hour, "secret")
	require.NoError(t, err)

	return []string{"--server", srv.URL, "--token", token.SignedString}
}

func (c cli) seedPracticedCards(t *testing.T) {
	t.Helper()

	file := c.writeCardsFile(t, "cards.json",
		models.Card{Word: "der Hund", Definition: "dog", Type: models.CardTypeNoun},
		models.Card{Word: "die Katze", Definition: "cat", Type: models.CardTypeNoun},
	)
	_, err := c.run(t, "", "import", file)
	require.NoError(t, err)
	_, err = c.run(t, "", "practice", "1", "3")
	require.NoError(t, err)
	_, err = c.run(t, "", "practice", "2", "1")
	require.NoError(t, err)
}

func TestMigrate_DeclinedKeepsData(t *testing.T) {
	c := newCLI(t)
	c.seedPracticedCards(t)

	var upserted []models.ProgressRecord
	out, err := c.run(t, "n\n", append([]string{"migrate"}, remoteArgs(t, &upserted)...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 cards with local progress.")
	assert.Contains(t, out, "Migration skipped, local data kept.")
	assert.Empty(t, upserted)

	out, err = c.run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Cards: 2")
}

func TestMigrate_UploadsMappedProgress(t *testing.T) {
	c := newCLI(t)
	c.seedPracticedCards(t)

	var upserted []models.ProgressRecord
	out, err := c.run(t, "", append([]string{"migrate", "--yes", "--clear"}, remoteArgs(t, &upserted)...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Migrated 1 cards.")
	assert.Contains(t, out, "1 cards are unknown to the remote store.")
	assert.Contains(t, out, "Local cards cleared.")

	require.Len(t, upserted, 1)
	assert.Equal(t, "user-1", upserted[0].UserID)
	assert.Equal(t, int64(10), upserted[0].CardID)
	assert.Equal(t, 3, upserted[0].CardScore)
	assert.Equal(t, 1, upserted[0].ViewCount)
}

func TestSync_LocalOnly(t *testing.T) {
	out, err := newCLI(t).run(t, "", "sync")
	assert.Error(t, err)
	assert.Contains(t, out, "Delivered: 0")
}

func TestPrintError_DescribesCause(t *testing.T) {
	out, err := newCLI(t).run(t, "", "sync")
	require.Error(t, err)

	var stderr bytes.Buffer
	root := newRootCommand()
	root.SetErr(&stderr)
	printError(root, err)

	assert.Contains(t, stderr.String(), app.MsgRemoteNotConfigured)
	assert.NotContains(t, out, "Error:")
}

func TestStatus_LocalOnly(t *testing.T) {
	out, err := newCLI(t).run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "User: (not signed in)")
	assert.Contains(t, out, "Last synced: never")
}

func TestConfirm(t *testing.T) {
	tests := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	}
	for input, want := range tests {
		assert.Equal(t, want, confirm(strings.NewReader(input), &bytes.Buffer{}, "?"), "input %q", input)
	}
}
