package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"recipe": {
				"id": 42,
				"title": "Kürbissuppe",
				"ingredients": [
					{"name": "Kürbis", "amount": 1, "unit": "Stück"},
					{"name": "Salz"}
				],
				"steps": [
					"Kürbis schälen",
					{"step": "Kochen"},
					{"text": "Pürieren"}
				],
				"work_minutes": 10,
				"cook_minutes": 25
			}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key", 5*time.Second)
	rec, raw, msg, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "secret-key", gotKey)
	assert.Empty(t, msg)
	assert.NotEmpty(t, raw)

	// numeric id and amount decode as strings
	assert.Equal(t, FlexString("42"), rec.ID)
	require.Len(t, rec.Ingredients, 2)
	assert.Equal(t, FlexString("1"), rec.Ingredients[0].Amount)

	// step union: plain string, step object, text object
	require.Len(t, rec.Steps, 3)
	assert.Equal(t, "Kürbis schälen", rec.Steps[0].Line())
	assert.Equal(t, "Kochen", rec.Steps[1].Line())
	assert.Equal(t, "Pürieren", rec.Steps[2].Line())

	assert.Equal(t, 10, rec.WorkMinutes)
	assert.Equal(t, 25, rec.CookMinutes)
}

func TestFetch_NoCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "nothing left to export"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", 5*time.Second)
	rec, _, msg, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, "nothing left to export", msg)
}

func TestFetch_NoCandidateDefaultMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", 5*time.Second)
	rec, _, msg, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, "No recipe available for export", msg)
}

func TestFetch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", 5*time.Second)
	_, _, _, err := c.Fetch(context.Background())
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.Status)
	assert.Equal(t, "quota exceeded", se.Body)
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, "k", time.Second)
	_, _, _, err := c.Fetch(context.Background())
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se), "transport failure must not look like a provider status error")
}
