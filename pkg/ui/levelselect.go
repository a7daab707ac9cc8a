package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LevelSelectScreen lists the difficulty tiers with the best score recorded for each
type LevelSelectScreen struct {
	levels   []config.Level
	best     map[string]int
	selected int
	onSelect func(config.Level) // Callback when a level is chosen
}

// NewLevelSelectScreen creates the menu. best may be nil when no scores are kept.
func NewLevelSelectScreen(levels []config.Level, best map[string]int, onSelect func(config.Level)) *LevelSelectScreen {
	return &LevelSelectScreen{
		levels:   levels,
		best:     best,
		onSelect: onSelect,
	}
}

// Next moves the cursor down, wrapping to the top
func (ls *LevelSelectScreen) Next() {
	if len(ls.levels) == 0 {
		return
	}
	ls.selected = (ls.selected + 1) % len(ls.levels)
}

// Prev moves the cursor up, wrapping to the bottom
func (ls *LevelSelectScreen) Prev() {
	if len(ls.levels) == 0 {
		return
	}
	ls.selected = (ls.selected - 1 + len(ls.levels)) % len(ls.levels)
}

// Selected returns the highlighted level
func (ls *LevelSelectScreen) Selected() (config.Level, bool) {
	if len(ls.levels) == 0 {
		return config.Level{}, false
	}
	return ls.levels[ls.selected], true
}

// Choose fires the callback for the highlighted level
func (ls *LevelSelectScreen) Choose() {
	level, ok := ls.Selected()
	if ok && ls.onSelect != nil {
		ls.onSelect(level)
	}
}

// Label is the menu text for a level
func (ls *LevelSelectScreen) Label(level config.Level) string {
	if score, ok := ls.best[level.Name]; ok {
		return fmt.Sprintf("%s  (best %d)", level.Name, score)
	}
	return level.Name
}

// Update handles input for the level menu
func (ls *LevelSelectScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		ls.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		ls.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		ls.Choose()
	}
	return nil
}

// Draw renders the level menu
func (ls *LevelSelectScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	centerX := float64(width) / 2
	drawText(screen, "Select Level", centerX, float64(height)/4, 64, color.RGBA{255, 200, 50, 255})

	buttonWidth := 420.0
	buttonHeight := 50.0
	optionSpacing := 80.0
	buttonX := centerX - buttonWidth/2
	optionY := float64(height) / 2

	for i, level := range ls.levels {
		bg, fg := color.Color(buttonColor), color.Color(labelColor)
		if i == ls.selected {
			bg, fg = buttonSelectedColor, labelSelectedColor
		}
		drawButton(screen, ls.Label(level), buttonX, optionY+float64(i)*optionSpacing, buttonWidth, buttonHeight, bg, fg)
	}

	drawText(screen, "Arrow Keys: Navigate | Enter: Select", centerX, float64(height)-50, 20, hintColor)
}
