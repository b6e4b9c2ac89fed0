package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/color-lines/internal/config"
	"github.com/vovakirdan/color-lines/internal/games/lines"
	"github.com/vovakirdan/color-lines/internal/games/lines/core"
	"github.com/vovakirdan/color-lines/internal/storage"
)

type testServer struct {
	handler http.Handler
	session *Session
	store   *storage.Store
}

func newTestServer(t *testing.T, difficulty config.DifficultyPreset) *testServer {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	seed := int64(0)
	session := NewSession(store, difficulty, func() core.Random {
		seed++
		return rand.New(rand.NewSource(seed))
	})

	router := NewRouter(RouterConfig{
		Logger:         log.New(io.Discard),
		Session:        session,
		Store:          store,
		DefaultVariant: lines.VariantClassic,
	})

	return &testServer{handler: router, session: session, store: store}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody io.Reader = http.NoBody
	if raw, ok := body.(string); ok {
		reqBody = bytes.NewBufferString(raw)
	} else if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

type errorBody struct {
	Error APIError `json:"error"`
}

// adjacentMove finds a filled cell with an empty orthogonal neighbor.
func adjacentMove(t *testing.T, b *core.Board) (core.Coord, core.Coord) {
	t.Helper()
	steps := []core.Coord{core.C(1, 0), core.C(-1, 0), core.C(0, 1), core.C(0, -1)}
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			from := core.C(x, y)
			if b.IsEmpty(from) {
				continue
			}
			for _, d := range steps {
				to := from.Add(d.X, d.Y)
				if b.InBounds(to) && b.IsEmpty(to) {
					return from, to
				}
			}
		}
	}
	t.Fatal("no legal move")
	return core.Coord{}, core.Coord{}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestListVariants(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)

	rr := ts.request(http.MethodGet, "/api/v1/variants", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `"id":"lines"`)
	assert.Contains(t, body, `"id":"lines_mini"`)
}

func TestGetGameWithoutGame(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)

	rr := ts.request(http.MethodGet, "/api/v1/game", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, CodeNoGame, decodeBody[errorBody](t, rr).Error.Code)

	rr = ts.request(http.MethodPost, "/api/v1/game/moves", map[string]any{
		"from": core.C(0, 0), "to": core.C(1, 1),
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewGame(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)

	rr := ts.request(http.MethodPost, "/api/v1/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	view := decodeBody[map[string]any](t, rr)
	assert.Equal(t, "lines", view["variant"])
	assert.Equal(t, 9.0, view["size"])
	assert.Equal(t, 0.0, view["score"])
	assert.Equal(t, "playing", view["state"])
	assert.Len(t, view["rows"], 9)

	next := view["next"].([]any)
	require.Len(t, next, 3)
	assert.Contains(t, next[0], "color", "easy shows colors")

	rr = ts.request(http.MethodPost, "/api/v1/game", newGameRequest{Variant: "lines_mini"})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 7.0, decodeBody[map[string]any](t, rr)["size"])
}

func TestNewGameUnknownVariant(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)

	rr := ts.request(http.MethodPost, "/api/v1/game", newGameRequest{Variant: "tetris"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, CodeUnknownVariant, decodeBody[errorBody](t, rr).Error.Code)
}

func TestNewGameBadJSON(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)

	rr := ts.request(http.MethodPost, "/api/v1/game", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, CodeInvalidRequest, decodeBody[errorBody](t, rr).Error.Code)
}

func TestHardDifficultyHidesNext(t *testing.T) {
	ts := newTestServer(t, config.DifficultyHard)

	rr := ts.request(http.MethodPost, "/api/v1/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, decodeBody[map[string]any](t, rr)["next"])
}

func TestMove(t *testing.T) {
	ts := newTestServer(t, config.DifficultyMedium)
	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/game", nil).Code)

	from, to := adjacentMove(t, ts.session.game.Board())
	rr := ts.request(http.MethodPost, "/api/v1/game/moves", moveRequest{From: &from, To: &to})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decodeBody[map[string]any](t, rr)
	turn := resp["turn"].(map[string]any)
	assert.Equal(t, "accepted", turn["move"].(map[string]any)["status"])

	game := resp["game"].(map[string]any)
	assert.Equal(t, 1.0, game["moves"])
	next := game["next"].([]any)
	require.NotEmpty(t, next)
	assert.NotContains(t, next[0], "color", "medium hides colors")
}

func TestMoveRejected(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)
	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/game", nil).Code)

	empty := ts.session.game.Board().EmptyCells()
	rr := ts.request(http.MethodPost, "/api/v1/game/moves", moveRequest{From: &empty[0], To: &empty[1]})
	require.Equal(t, http.StatusOK, rr.Code)

	turn := decodeBody[map[string]any](t, rr)["turn"].(map[string]any)
	move := turn["move"].(map[string]any)
	assert.Equal(t, "rejected", move["status"])
	assert.Equal(t, string(core.RejectEmptySource), move["reason"])
}

func TestMoveMissingCoordinates(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)
	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/game", nil).Code)

	rr := ts.request(http.MethodPost, "/api/v1/game/moves", map[string]any{"from": core.C(0, 0)})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// nearlyFullSave returns a classic save whose board is full except for
// (0,0) and (1,0), with no runs anywhere.
func nearlyFullSave(t *testing.T) lines.Save {
	t.Helper()
	b, err := core.NewBoard(9)
	require.NoError(t, err)
	n := len(core.Palette)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			require.NoError(t, b.Set(core.C(x, y), core.Occupied(core.Palette[(x+2*y)%n])))
		}
	}
	require.NoError(t, b.Set(core.C(0, 0), core.Empty()))
	require.NoError(t, b.Set(core.C(1, 0), core.Empty()))
	return lines.Save{GameID: "final", Variant: lines.VariantClassic, Board: core.Encode(b), Pending: "0,0,r"}
}

func TestMoveEndingGameRecordsScore(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)
	ctx := context.Background()
	require.NoError(t, ts.store.SaveGame(ctx, "end", nearlyFullSave(t)))

	rr := ts.request(http.MethodPost, "/api/v1/game/load", slotRequest{Slot: "end"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	from, to := core.C(2, 0), core.C(1, 0)
	rr = ts.request(http.MethodPost, "/api/v1/game/moves", moveRequest{From: &from, To: &to, Name: "ann"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	turn := decodeBody[map[string]any](t, rr)["turn"].(map[string]any)
	assert.Equal(t, true, turn["game_over"])

	scores, err := ts.store.TopScores(ctx, lines.VariantClassic, 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "ann", scores[0].Name)
	assert.Equal(t, "final", scores[0].GameID)

	rr = ts.request(http.MethodPost, "/api/v1/game/moves", moveRequest{From: &from, To: &to})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, CodeGameOver, decodeBody[errorBody](t, rr).Error.Code)
}

// flakyStore fails SaveScore while failing is set.
type flakyStore struct {
	storage.Storage
	failing bool
}

func (f *flakyStore) SaveScore(ctx context.Context, entry storage.ScoreEntry) error {
	if f.failing {
		return errors.New("disk full")
	}
	return f.Storage.SaveScore(ctx, entry)
}

func TestFinalScoreRecordedAfterStoreFailure(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	flaky := &flakyStore{Storage: store, failing: true}
	session := NewSession(flaky, config.DifficultyEasy, func() core.Random {
		return rand.New(rand.NewSource(1))
	})
	ctx := context.Background()
	require.NoError(t, store.SaveGame(ctx, "end", nearlyFullSave(t)))
	_, err = session.Load(ctx, "end")
	require.NoError(t, err)

	topScores := func() []storage.ScoreEntry {
		scores, err := store.TopScores(ctx, lines.VariantClassic, 10)
		require.NoError(t, err)
		return scores
	}

	from, to := core.C(2, 0), core.C(1, 0)
	turn, _, err := session.Move(ctx, from, to, "ann")
	require.Error(t, err)
	require.True(t, turn.GameOver)
	require.Empty(t, topScores())

	flaky.failing = false
	_, _, err = session.Move(ctx, from, to, "ann")
	require.ErrorIs(t, err, lines.ErrGameOver)
	scores := topScores()
	require.Len(t, scores, 1)
	assert.Equal(t, "ann", scores[0].Name)
	assert.Equal(t, "final", scores[0].GameID)

	_, _, err = session.Move(ctx, from, to, "ann")
	require.ErrorIs(t, err, lines.ErrGameOver)
	assert.Len(t, topScores(), 1, "recorded once")

	save, err := session.Save(ctx, "end")
	require.NoError(t, err)
	assert.True(t, save.Recorded)
}

func TestSaveAndLoad(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)
	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/game", nil).Code)
	original := ts.session.game.ID()

	rr := ts.request(http.MethodPost, "/api/v1/game/save", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, original, decodeBody[lines.Save](t, rr).GameID)

	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/game", nil).Code)
	require.NotEqual(t, original, ts.session.game.ID())

	rr = ts.request(http.MethodPost, "/api/v1/game/load", slotRequest{Slot: DefaultSlot})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, original, decodeBody[map[string]any](t, rr)["id"])
}

func TestLoadMissingSlot(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)

	rr := ts.request(http.MethodPost, "/api/v1/game/load", slotRequest{Slot: "nope"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, CodeSaveNotFound, decodeBody[errorBody](t, rr).Error.Code)
}

func TestLoadInvalidSave(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)
	require.NoError(t, ts.store.SaveGame(context.Background(), "bad", lines.Save{Variant: lines.VariantClassic, Board: "garbage"}))

	rr := ts.request(http.MethodPost, "/api/v1/game/load", slotRequest{Slot: "bad"})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestScores(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)
	ctx := context.Background()
	for _, e := range []storage.ScoreEntry{
		{Variant: "lines", Name: "ann", Score: 40},
		{Variant: "lines", Name: "bob", Score: 120},
		{Variant: "lines_mini", Name: "cy", Score: 10},
	} {
		require.NoError(t, ts.store.SaveScore(ctx, e))
	}

	rr := ts.request(http.MethodGet, "/api/v1/scores/lines", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	entries := decodeBody[[]storage.ScoreEntry](t, rr)
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].Name)

	rr = ts.request(http.MethodGet, "/api/v1/scores/lines?format=records", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "bob - 120\nann - 40", rr.Body.String())

	rr = ts.request(http.MethodGet, "/api/v1/scores/lines?limit=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]storage.ScoreEntry](t, rr), 1)

	rr = ts.request(http.MethodGet, "/api/v1/scores/lines?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/scores/tetris", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/scores/lines/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decodeBody[storage.GameStats](t, rr)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 120, stats.HighScore)
}

func TestEmptyScoresIsArray(t *testing.T) {
	ts := newTestServer(t, config.DifficultyEasy)

	rr := ts.request(http.MethodGet, "/api/v1/scores/lines_mini", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	h := Recovery(log.New(io.Discard))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, CodeInternalError, decodeBody[errorBody](t, rr).Error.Code)
}
