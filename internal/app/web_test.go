package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"go.viam.com/test"

	"github.com/relabs-tech/nmea_computer/internal/gps"
)

func TestWebNoData(t *testing.T) {
	srv := httptest.NewServer(newWebState().routes(""))
	defer srv.Close()

	for _, path := range []string{"/api/gps", "/api/gps.geojson"} {
		resp, err := http.Get(srv.URL + path)
		test.That(t, err, test.ShouldBeNil)
		resp.Body.Close()
		test.That(t, resp.StatusCode, test.ShouldEqual, http.StatusServiceUnavailable)
	}
}

func TestWebAPI(t *testing.T) {
	state := newWebState()
	state.update(gps.Fix{Sentence: "GGA", Latitude: 48.1, Longitude: 11.5, Sats: 8, FixName: "autonomous"})

	srv := httptest.NewServer(state.routes(""))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/gps")
	test.That(t, err, test.ShouldBeNil)
	defer resp.Body.Close()
	test.That(t, resp.StatusCode, test.ShouldEqual, http.StatusOK)
	test.That(t, resp.Header.Get("Content-Type"), test.ShouldEqual, "application/json")

	var f gps.Fix
	test.That(t, json.NewDecoder(resp.Body).Decode(&f), test.ShouldBeNil)
	test.That(t, f.Sats, test.ShouldEqual, uint(8))

	geo, err := http.Get(srv.URL + "/api/gps.geojson")
	test.That(t, err, test.ShouldBeNil)
	defer geo.Body.Close()
	body, err := io.ReadAll(geo.Body)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(body), test.ShouldContainSubstring, `"coordinates":[11.5,48.1]`)
}

func TestWebSocketStream(t *testing.T) {
	state := newWebState()
	state.update(gps.Fix{Sentence: "GGA", Sats: 8})

	srv := httptest.NewServer(state.routes(""))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/gps"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.That(t, err, test.ShouldBeNil)
	defer conn.Close()

	// last known fix first; the client is registered once it arrives
	var f gps.Fix
	test.That(t, conn.ReadJSON(&f), test.ShouldBeNil)
	test.That(t, f.Sentence, test.ShouldEqual, "GGA")

	state.update(gps.Fix{Sentence: "GSV", Sats: 11})
	test.That(t, conn.ReadJSON(&f), test.ShouldBeNil)
	test.That(t, f.Sentence, test.ShouldEqual, "GSV")
	test.That(t, f.Sats, test.ShouldEqual, uint(11))
}
