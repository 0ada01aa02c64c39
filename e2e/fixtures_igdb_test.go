//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"sync"
)

// FakeIGDB serves POST /games from a fixed catalog
type FakeIGDB struct {
	server *httptest.Server

	mu       sync.Mutex
	games    []fakeGame
	status   int
	requests []fakeRequest
}

type fakeRequest struct {
	Body     string
	ClientID string
	Auth     string
}

type fakeGame struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	Rating           float64        `json:"rating"`
	Summary          string         `json:"summary"`
	FirstReleaseDate int64          `json:"first_release_date"`
	Cover            map[string]any `json:"cover"`
	Platforms        []fakePlatform `json:"platforms"`
}

type fakePlatform struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// IGDBOption configures the stub
type IGDBOption func(*FakeIGDB)

// WithStatus makes every request fail with code
func WithStatus(code int) IGDBOption {
	return func(f *FakeIGDB) {
		f.status = code
	}
}

// WithTitles replaces the catalog with games of the given names, best
// rated first
func WithTitles(titles ...string) IGDBOption {
	return func(f *FakeIGDB) {
		f.games = makeGames(titles)
	}
}

// defaultTitles is 25 games: three pages of the browser
var defaultTitles = []string{
	"The Legend of Zelda: Breath of the Wild",
	"Super Mario Odyssey",
	"Red Dead Redemption 2",
	"The Witcher 3: Wild Hunt",
	"Hollow Knight",
	"Celeste",
	"Hades",
	"Portal 2",
	"Disco Elysium",
	"Outer Wilds",
	"Elden Ring",
	"Dark Souls",
	"Bloodborne",
	"The Legend of Zelda: Ocarina of Time",
	"Chrono Trigger",
	"Half-Life 2",
	"Mass Effect 2",
	"Persona 5 Royal",
	"Stardew Valley",
	"Into the Breach",
	"Super Metroid",
	"Inside",
	"Undertale",
	"God of War",
	"Sekiro: Shadows Die Twice",
}

// StartIGDB starts the stub and points the app at it
func (tf *TUITestFramework) StartIGDB(opts ...IGDBOption) *FakeIGDB {
	f := &FakeIGDB{games: makeGames(defaultTitles)}
	for _, opt := range opts {
		opt(f)
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	tf.igdb = f
	return f
}

func makeGames(titles []string) []fakeGame {
	games := make([]fakeGame, 0, len(titles))
	for i, title := range titles {
		id := int64(1000 + i)
		games = append(games, fakeGame{
			ID:               id,
			Name:             title,
			Rating:           99 - float64(i),
			Summary:          fmt.Sprintf("Summary of %s.", title),
			FirstReleaseDate: 1488499200 + int64(i)*86400, // 03/03/2017 onward
			Cover: map[string]any{
				"id":  id,
				"url": fmt.Sprintf("//images.igdb.com/igdb/image/upload/t_thumb/co%d.jpg", id),
			},
			Platforms: []fakePlatform{{ID: 6, Name: "PC (Microsoft Windows)"}, {ID: 130, Name: "Nintendo Switch"}},
		})
	}
	return games
}

var limitRe = regexp.MustCompile(`limit (\d+);`)

func (f *FakeIGDB) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, fakeRequest{
		Body:     string(body),
		ClientID: r.Header.Get("Client-ID"),
		Auth:     r.Header.Get("Authorization"),
	})
	status := f.status
	games := f.games
	f.mu.Unlock()

	if r.Method != http.MethodPost || r.URL.Path != "/games" {
		http.NotFound(w, r)
		return
	}
	if status != 0 {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"message":"stub failure"}`))
		return
	}

	limit := len(games)
	if m := limitRe.FindStringSubmatch(string(body)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n < limit {
			limit = n
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(games[:limit])
}

// URL is the base URL to configure the client with
func (f *FakeIGDB) URL() string {
	return f.server.URL + "/"
}

// Requests returns what the stub has received so far
func (f *FakeIGDB) Requests() []fakeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeRequest(nil), f.requests...)
}

func (f *FakeIGDB) Close() {
	f.server.Close()
}
