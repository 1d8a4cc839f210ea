package caixa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLatest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/megasena", r.URL.Path)
		w.Write([]byte(`{"numero": 2700, "dataApuracao": "15/03/2024", "listaDezenas": ["04", "18", "29", "37", "41", "53"]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	res, err := c.FetchLatest(context.Background(), "megasena")
	require.NoError(t, err)

	assert.Equal(t, 2700, res.Contest)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), res.Date)
	assert.Equal(t, []int{4, 18, 29, 37, 41, 53}, res.Numbers)
}

func TestFetchContestPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quina/100", r.URL.Path)
		w.Write([]byte(`{"numero": 100, "dataApuracao": "01/01/2020", "listaDezenas": ["1", "2", "3", "4", "5"]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	res, err := c.FetchContest(context.Background(), "quina", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Contest)
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	_, err := c.FetchLatest(context.Background(), "megasena")
	assert.Error(t, err)
}

func TestParseResultFallsBackToDrawOrder(t *testing.T) {
	res, err := parseResult(apiResult{
		Numero:       50,
		DataApuracao: "10/02/2021",
		DezenasOrdem: []string{"30", "07", "12"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{30, 7, 12}, res.Numbers)
}

func TestParseResultBadDateKeepsDraw(t *testing.T) {
	res, err := parseResult(apiResult{
		Numero:       51,
		DataApuracao: "not-a-date",
		ListaDezenas: []string{"1", "2"},
	})
	require.NoError(t, err)
	assert.True(t, res.Date.IsZero())
	assert.Equal(t, []int{1, 2}, res.Numbers)
}

func TestParseResultRejectsEmptyAndMalformed(t *testing.T) {
	_, err := parseResult(apiResult{Numero: 52})
	assert.Error(t, err)

	_, err = parseResult(apiResult{Numero: 53, ListaDezenas: []string{"x"}})
	assert.Error(t, err)
}
