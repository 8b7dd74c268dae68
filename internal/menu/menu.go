// Package menu drives the operator through the product catalog with
// keypress menus.
package menu

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-manager/internal/console"
	"github.com/kahvecikaan/product-manager/internal/service"
)

// State is a screen of the application
type State int

const (
	MainMenu State = iota
	Registering
	Searching
	Exit
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "main-menu"
	case Registering:
		return "registering"
	case Searching:
		return "searching"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Next returns the state the main menu moves to when key is pressed.
// Unknown keys keep the main menu on screen.
func Next(key console.Key) State {
	switch key {
	case '1':
		return Registering
	case '2':
		return Searching
	case '3':
		return Exit
	default:
		return MainMenu
	}
}

type Menu struct {
	console console.Console
	catalog service.CatalogService
	logger  hclog.Logger
}

func New(c console.Console, catalog service.CatalogService, logger hclog.Logger) *Menu {
	return &Menu{
		console: c,
		catalog: catalog,
		logger:  logger,
	}
}

// Run shows the main menu until the operator picks exit.
// It only returns an error when the console can't be read.
func (m *Menu) Run(ctx context.Context) error {
	m.console.SetTitle("Product-Manager")

	state := MainMenu
	for {
		m.logger.Trace("Entering state", "state", state)

		switch state {
		case MainMenu:
			key, err := m.showMainMenu()
			if err != nil {
				return err
			}
			state = Next(key)

		case Registering:
			if err := m.register(ctx); err != nil {
				return err
			}
			m.console.Clear()
			state = MainMenu

		case Searching:
			if err := m.search(ctx); err != nil {
				return err
			}
			m.console.Clear()
			state = MainMenu

		case Exit:
			return nil
		}
	}
}

func (m *Menu) showMainMenu() (console.Key, error) {
	m.console.ShowCursor(false)

	m.console.Println("1. New product")
	m.console.Println("2. Search product")
	m.console.Println("3. Exit")

	key, err := m.console.ReadKey()
	if err != nil {
		return 0, err
	}

	m.console.Clear()
	return key, nil
}
