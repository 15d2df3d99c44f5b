package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"bleach-trivia/internal/domain"
)

// LeaderboardStore is the persistence gateway for the leaderboard aggregate:
// one human-readable JSON document, written after every scoring event and on
// shutdown. A corrupt or missing document is replaced with a fresh empty one
// (data loss on corruption is an accepted tradeoff, logged as a warning).
type LeaderboardStore struct {
	path     string
	fallback string
	modes    []string
	log      zerolog.Logger
}

// NewLeaderboardStore builds a store over the primary path. fallback, if
// non-empty, is a secondary location tried when writing the primary fails,
// typically the working directory when the install directory is read-only.
func NewLeaderboardStore(path, fallback string, modeKeys []string, log zerolog.Logger) *LeaderboardStore {
	return &LeaderboardStore{path: path, fallback: fallback, modes: modeKeys, log: log}
}

// Load parses the persisted document. Missing file: fresh empty aggregate.
// Corrupt content: warn and return a fresh aggregate. A parsed document gets
// any absent top-level key back-filled, so older files load cleanly.
func (s *LeaderboardStore) Load() *domain.Leaderboard {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("cannot read leaderboard, starting fresh")
		}
		return domain.NewLeaderboard(s.modes)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("leaderboard file is corrupted, starting fresh")
		return domain.NewLeaderboard(s.modes)
	}

	board := domain.NewLeaderboard(s.modes)
	for _, key := range s.modes {
		if msg, ok := raw[key]; ok {
			var entries []domain.ScoreEntry
			if err := json.Unmarshal(msg, &entries); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("leaderboard file is corrupted, starting fresh")
				return domain.NewLeaderboard(s.modes)
			}
			board.Modes[key] = entries
		}
	}
	if msg, ok := raw["top_scores"]; ok {
		if err := json.Unmarshal(msg, &board.TopScores); err != nil {
			s.log.Warn().Err(err).Msg("leaderboard file is corrupted, starting fresh")
			return domain.NewLeaderboard(s.modes)
		}
	}
	if msg, ok := raw["player_progress"]; ok {
		if err := json.Unmarshal(msg, &board.Progress); err != nil {
			s.log.Warn().Err(err).Msg("leaderboard file is corrupted, starting fresh")
			return domain.NewLeaderboard(s.modes)
		}
	}
	if board.Progress == nil {
		board.Progress = map[string][]string{}
	}
	return board
}

// Save serializes the full aggregate and writes it atomically (temp file plus
// rename) so a reader never observes a half-written document. On primary-path
// I/O errors the fallback location is tried; the error propagates if both fail.
func (s *LeaderboardStore) Save(board *domain.Leaderboard) error {
	data, err := json.MarshalIndent(s.document(board), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}

	primaryErr := writeAtomic(s.path, data)
	if primaryErr == nil {
		return nil
	}
	if s.fallback == "" || s.fallback == s.path {
		return fmt.Errorf("save leaderboard: %w", primaryErr)
	}

	s.log.Warn().Err(primaryErr).Str("path", s.path).Str("fallback", s.fallback).Msg("primary leaderboard write failed, trying fallback")
	if err := writeAtomic(s.fallback, data); err != nil {
		return fmt.Errorf("save leaderboard (fallback after %v): %w", primaryErr, err)
	}
	return nil
}

func (s *LeaderboardStore) document(board *domain.Leaderboard) map[string]any {
	doc := make(map[string]any, len(s.modes)+2)
	for _, key := range s.modes {
		entries := board.Modes[key]
		if entries == nil {
			entries = []domain.ScoreEntry{}
		}
		doc[key] = entries
	}
	top := board.TopScores
	if top == nil {
		top = []domain.ScoreEntry{}
	}
	doc["top_scores"] = top

	progress := make(map[string][]string, len(board.Progress))
	for player, ids := range board.Progress {
		sorted := make([]string, len(ids))
		copy(sorted, ids)
		sort.Slice(sorted, func(i, j int) bool {
			a, _ := strconv.Atoi(sorted[i])
			b, _ := strconv.Atoi(sorted[j])
			return a < b
		})
		progress[player] = sorted
	}
	doc["player_progress"] = progress
	return doc
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".leaderboard-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
