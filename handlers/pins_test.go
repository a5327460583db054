// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/testutil"
)

func TestCreatePin(t *testing.T) {
	core := testutil.NewTestCore(t)
	handler := NewPinHandler(core.Registry, core.Controller)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid pin",
			requestBody: models.CreatePinRequest{
				Lat:   51.5,
				Lng:   -0.09,
				Title: "Library",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "empty title",
			requestBody: models.CreatePinRequest{
				Lat:   51.5,
				Lng:   -0.09,
				Title: "",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "whitespace title",
			requestBody: models.CreatePinRequest{
				Title: "   ",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			requestBody:    nil, // sent as empty body below
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/pins", tc.requestBody)
			w := httptest.NewRecorder()

			handler.Create(w, req)
			testutil.AssertStatus(t, w, tc.expectedStatus)

			if tc.expectedStatus == http.StatusCreated {
				var resp models.PinResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ID == "" {
					t.Error("Expected non-empty pin id")
				}
				if resp.CreatedAgo == "" {
					t.Error("Expected humanized created_ago")
				}
			}
		})
	}
}

func TestListPins(t *testing.T) {
	core := testutil.NewTestCore(t)
	handler := NewPinHandler(core.Registry, core.Controller)

	// Empty list first
	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/pins", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var empty models.ListPinsResponse
	testutil.AssertJSON(t, w, &empty)
	if empty.Count != 0 || len(empty.Pins) != 0 {
		t.Errorf("Expected empty list, got %+v", empty)
	}

	first := testutil.AddTestPin(t, core.Registry, "First", models.Coordinate{Lat: 1, Lng: 2})
	second := testutil.AddTestPin(t, core.Registry, "Second", models.Coordinate{Lat: 3, Lng: 4})

	w = httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/pins", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListPinsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 2 {
		t.Fatalf("Expected 2 pins, got %d", resp.Count)
	}
	if resp.Pins[0].ID != first.ID || resp.Pins[1].ID != second.ID {
		t.Error("Expected pins in insertion order")
	}
}

func TestDeletePin(t *testing.T) {
	core := testutil.NewTestCore(t)
	handler := NewPinHandler(core.Registry, core.Controller)

	pin := testutil.AddTestPin(t, core.Registry, "Doomed", models.Coordinate{Lat: 1, Lng: 2})

	req := testutil.MakeRequest("DELETE", "/pins/"+pin.ID, nil)
	req.SetPathValue("id", pin.ID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	if len(core.Registry.List()) != 0 {
		t.Error("Expected pin removed")
	}

	// Deleting again is a no-op, same status
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("DELETE", "/pins/"+pin.ID, nil)
	req.SetPathValue("id", pin.ID)
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)
}

func TestSelectPin(t *testing.T) {
	core := testutil.NewTestCore(t)
	handler := NewPinHandler(core.Registry, core.Controller)

	pin := testutil.AddTestPin(t, core.Registry, "Target", models.Coordinate{Lat: 35.68, Lng: 139.69})

	req := testutil.MakeRequest("POST", "/pins/"+pin.ID+"/select", nil)
	req.SetPathValue("id", pin.ID)
	w := httptest.NewRecorder()
	handler.Select(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Viewport.Center != pin.Coordinate() {
		t.Errorf("Expected viewport centered on pin, got %+v", resp.Viewport.Center)
	}
	if resp.State != models.StateIdle {
		t.Errorf("Expected idle, got %s", resp.State)
	}
}

func TestSelectUnknownPin(t *testing.T) {
	core := testutil.NewTestCore(t)
	handler := NewPinHandler(core.Registry, core.Controller)

	req := testutil.MakeRequest("POST", "/pins/nope/select", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	handler.Select(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
