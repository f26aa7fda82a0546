package app

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/nmea_computer/internal/config"
	"github.com/relabs-tech/nmea_computer/internal/gps"
	"github.com/relabs-tech/nmea_computer/internal/nmea"
)

const (
	displayWidth   = 128
	displayHeight  = 64
	lineHeight     = 13 // basicfont.Face7x13
	linesPerScreen = displayHeight / lineHeight
)

// displayState accumulates fixes for the OLED. Every field seen so far
// stays on screen, the snapshot itself carrying the latest values.
type displayState struct {
	mu   sync.Mutex
	data nmea.Data
	seen nmea.Field
	page int
}

func (s *displayState) update(f gps.Fix) {
	d := f.Data()
	s.mu.Lock()
	s.seen |= d.Updated
	d.Updated = s.seen
	s.data = d
	s.mu.Unlock()
}

// nextScreen returns the lines for the next refresh, paging through the
// snapshot when it does not fit on one screen.
func (s *displayState) nextScreen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen == 0 {
		return []string{"GPS Position", "Waiting..."}
	}
	d := s.data
	lines := nmea.Lines(&d)[1:] // drop the separator
	screen := displayPage(lines, s.page)
	s.page++
	return screen
}

// displayPage returns page number page (wrapping) of lines.
func displayPage(lines []string, page int) []string {
	if len(lines) <= linesPerScreen {
		return lines
	}
	pages := (len(lines) + linesPerScreen - 1) / linesPerScreen
	start := (page % pages) * linesPerScreen
	end := start + linesPerScreen
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

// renderLines draws up to linesPerScreen lines of text.
func renderLines(lines []string) *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, displayWidth, displayHeight))

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}
	for i, l := range lines {
		if i >= linesPerScreen {
			break
		}
		drawer.Dot = fixed.P(0, lineHeight*(i+1))
		drawer.DrawString(l)
	}
	return img
}

func RunDisplay() error {
	cfg := config.Get()

	// Initialize periph
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	// Open I2C bus
	bus, err := i2creg.Open("")
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}
	defer bus.Close()

	// ssd1306 talks to the panel at 0x3C
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Println("display: initialized")

	if err := dev.Draw(dev.Bounds(), renderLines([]string{"NMEA Pi", "Looking for", "sats"}), image.Point{}); err != nil {
		log.Printf("display: error showing splash: %v", err)
	}

	state := &displayState{}

	client, err := connectMQTT("display", cfg.MQTTBroker, cfg.MQTTClientIDDisplay)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	err = subscribe("display", client, cfg.TopicGPS, func(_ mqtt.Client, msg mqtt.Message) {
		var f gps.Fix
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("display: gps unmarshal error: %v", err)
			return
		}
		state.update(f)
	})
	if err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.DisplayEvery())
	defer ticker.Stop()

	log.Println("display: starting update loop")
	for range ticker.C {
		img := renderLines(state.nextScreen())
		if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
			log.Printf("display: error updating display: %v", err)
		}
	}
	return nil
}
