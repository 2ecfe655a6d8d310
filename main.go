package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/at0m741/Simple-Galaxy-Simulation/pkg/simulation"
)

const (
	screenWidth  = 1280
	screenHeight = 800

	minZoom = 0.1
	maxZoom = 10.0
)

// Game is the presenter: it owns the camera and the pixel buffer, and
// only reads the star field after each completed tick.
type Game struct {
	sim *simulation.Simulator
	cfg simulation.Config

	pix   []byte
	frame *ebiten.Image
	// Base color per star, fixed at startup like the star's opacity.
	baseCol [][3]uint8

	camX, camY float64 // world coordinates at the screen center
	zoom       float64

	dragging       bool
	prevMX, prevMY int

	paused bool
}

func newGame(cfg simulation.Config) (*Game, error) {
	sim, err := simulation.New(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		sim:   sim,
		cfg:   cfg,
		pix:   make([]byte, screenWidth*screenHeight*4),
		frame: ebiten.NewImage(screenWidth, screenHeight),
		zoom:  1.0,
	}
	g.buildPalette()
	return g, nil
}

// buildPalette derives a fixed base color per star from its opacity:
// low-opacity stars lean red-orange, high-opacity ones blue-white.
func (g *Game) buildPalette() {
	stars := g.sim.Store().Stars()
	g.baseCol = make([][3]uint8, len(stars))
	for i := range stars {
		op := stars[i].Opacity
		hue := 30 + 190*op
		sat := 0.45 - 0.35*op
		r, gg, b := colorful.Hsv(hue, sat, 1.0).RGB255()
		g.baseCol[i] = [3]uint8{r, gg, b}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		sim, err := simulation.New(g.cfg)
		if err != nil {
			return fmt.Errorf("resetting simulation: %w", err)
		}
		g.sim = sim
		g.buildPalette()
		g.camX, g.camY = 0, 0
		g.zoom = 1.0
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.zoom *= math.Pow(1.1, wy)
		g.zoom = math.Min(math.Max(g.zoom, minZoom), maxZoom)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if g.dragging {
			g.camX -= float64(mx-g.prevMX) / g.zoom
			g.camY -= float64(my-g.prevMY) / g.zoom
		}
		g.prevMX, g.prevMY = mx, my
		g.dragging = true
	} else {
		g.dragging = false
	}

	if !g.paused {
		g.sim.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for i := range g.pix {
		g.pix[i] = 0
	}

	stars := g.sim.Store().Stars()
	for i := 1; i < len(stars); i++ {
		s := &stars[i]
		sx := (s.Pos.X-g.camX)*g.zoom + screenWidth/2
		sy := (s.Pos.Y-g.camY)*g.zoom + screenHeight/2
		px, py := int(sx), int(sy)
		if px < 0 || py < 0 || px >= screenWidth || py >= screenHeight {
			continue
		}

		intensity := s.Brightness * (0.25 + 0.75*s.Opacity)
		col := g.baseCol[i]
		g.addPixel(px, py,
			byte(float64(col[0])*intensity),
			byte(float64(col[1])*intensity),
			byte(float64(col[2])*intensity))
	}

	g.frame.WritePixels(g.pix)
	screen.DrawImage(g.frame, nil)

	// Central mass on top of the point field.
	cx := (stars[0].Pos.X-g.camX)*g.zoom + screenWidth/2
	cy := (stars[0].Pos.Y-g.camY)*g.zoom + screenHeight/2
	vector.DrawFilledCircle(screen, float32(cx), float32(cy),
		float32(3*g.zoom)+2, color.RGBA{255, 240, 200, 255}, true)

	hud := fmt.Sprintf("TPS %5.1f  FPS %5.1f\nstars %d  halo %d  step %d\nzoom %.2f  cam (%.0f, %.0f)",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		g.sim.Store().Len(), len(g.sim.Store().Halo()), g.sim.Steps(),
		g.zoom, g.camX, g.camY)
	if g.paused {
		hud += "\npaused"
	}
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// addPixel writes a star into the frame buffer with saturating additive
// blending, so overlapping stars brighten rather than overwrite.
func (g *Game) addPixel(px, py int, r, gg, b byte) {
	idx := (py*screenWidth + px) * 4
	g.pix[idx+0] = satAdd(g.pix[idx+0], r)
	g.pix[idx+1] = satAdd(g.pix[idx+1], gg)
	g.pix[idx+2] = satAdd(g.pix[idx+2], b)
	g.pix[idx+3] = 0xff
}

func satAdd(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 0xff {
		return 0xff
	}
	return byte(s)
}

// runHeadless drives the clock without a window and plots energy and
// angular momentum samples to the terminal.
func runHeadless(cfg simulation.Config, steps, sampleEvery int) error {
	sim, err := simulation.New(cfg)
	if err != nil {
		return err
	}
	if sampleEvery < 1 {
		sampleEvery = 1
	}

	var energy, angMom []float64
	for i := 0; i < steps; i++ {
		sim.Update()
		if i%sampleEvery == 0 {
			energy = append(energy, sim.TotalEnergy())
			angMom = append(angMom, sim.AngularMomentum())
		}
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	fmt.Println(title.Render(fmt.Sprintf("%s: %d stars, %d steps (dt=%g)",
		cfg.Name, cfg.Stars, steps, cfg.Dt)))
	if len(energy) == 0 {
		return nil
	}
	fmt.Println(label.Render("total energy"))
	fmt.Println(asciigraph.Plot(energy, asciigraph.Height(12)))
	fmt.Println(label.Render("angular momentum"))
	fmt.Println(asciigraph.Plot(angMom, asciigraph.Height(12)))
	return nil
}

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	stars := flag.Int("stars", 0, "override the star count")
	seed := flag.Uint64("seed", 0, "override the RNG seed")
	headless := flag.Bool("headless", false, "run without a window and plot diagnostics")
	steps := flag.Int("steps", 600, "steps to run in headless mode")
	sampleEvery := flag.Int("sample", 10, "diagnostic sampling interval in headless mode")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = simulation.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *stars > 0 {
		cfg.Stars = *stars
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}

	if *headless {
		if err := runHeadless(cfg, *steps, *sampleEvery); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := newGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Simple Galaxy Simulation: " + cfg.Name)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
