package menu

import (
	"strconv"
	"strings"

	"github.com/kahvecikaan/product-manager/internal/domain"
)

// labels are right-aligned so the entered values line up
const labelWidth = 11

func (m *Menu) prompt(label string) (string, error) {
	m.console.ShowCursor(true)
	m.console.Printf("%*s: ", labelWidth, label)

	return m.console.ReadLine()
}

// promptInt repeats the prompt until the answer is a whole number
func (m *Menu) promptInt(label, warning string) (int, error) {
	for {
		answer, err := m.prompt(label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return n, nil
		}

		m.console.Warning("%s", warning)
	}
}

// confirm asks a yes/no question until one of the two is pressed
func (m *Menu) confirm(question string) (bool, error) {
	m.console.ShowCursor(false)

	for {
		m.console.Println(question + " (Y)es (N)o")

		key, err := m.console.ReadKey()
		if err != nil {
			return false, err
		}

		switch {
		case key.Is('y'):
			return true, nil
		case key.Is('n'):
			return false, nil
		}
	}
}

func (m *Menu) showProduct(p *domain.Product) {
	m.console.Printf("Name: %s\n", p.Name)
	m.console.Printf("SKU: %s\n", p.SKU)
	m.console.Printf("Description: %s\n", p.Description)
	m.console.Printf("Image (URL): %s\n", p.ImageURL)
	m.console.Printf("Price: %d\n", p.Price)
}
