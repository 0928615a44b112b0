// Package seed loads the menu catalog and the floor plan from a YAML file at
// startup.
//
//	items:
//	  - name: Burger
//	    description: Beef, cheddar, pickles
//	    price: 8.50
//	    available: true
//	    category: {kind: food, id: 1, name: Mains, vegan_friendly: false}
//	  - name: House Red
//	    price: 6.50
//	    available: true
//	    category: {kind: beverage, id: 1, name: Drinks, alcohol: true}
//	tables:
//	  - {id: 1, capacity: 2}
//	  - {id: 2, capacity: 4}
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"dinesmart/internal/core/application/usecases/commands"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/core/domain/model/table"
	"dinesmart/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type File struct {
	Items  []Item  `yaml:"items"`
	Tables []Table `yaml:"tables"`
}

type Item struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Available   bool     `yaml:"available"`
	Category    Category `yaml:"category"`
}

type Category struct {
	Kind          string `yaml:"kind"`
	ID            int64  `yaml:"id"`
	Name          string `yaml:"name"`
	VeganFriendly bool   `yaml:"vegan_friendly"`
	Alcohol       bool   `yaml:"alcohol"`
}

type Table struct {
	ID       int64 `yaml:"id"`
	Capacity int   `yaml:"capacity"`
}

func decode(r io.Reader) (File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("failed to parse seed: %w", err)
	}
	return file, nil
}

// Parse decodes the items of a seed document into add-item commands. Unknown
// keys are rejected; every invalid item is reported.
func Parse(r io.Reader) ([]commands.AddMenuItemCommand, error) {
	file, err := decode(r)
	if err != nil {
		return nil, err
	}

	cmds := make([]commands.AddMenuItemCommand, 0, len(file.Items))
	var problems []error
	for i, item := range file.Items {
		cmd, err := item.command()
		if err != nil {
			problems = append(problems, fmt.Errorf("item %d (%q): %w", i, item.Name, err))
			continue
		}
		cmds = append(cmds, cmd)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return cmds, nil
}

func (i Item) command() (commands.AddMenuItemCommand, error) {
	kind, err := menu.ParseCategoryKind(i.Category.Kind)
	if err != nil {
		return commands.AddMenuItemCommand{}, err
	}

	flag := i.Category.VeganFriendly
	if kind == menu.Beverage {
		flag = i.Category.Alcohol
	}

	category, err := menu.NewCategory(kind, i.Category.ID, i.Category.Name, flag)
	if err != nil {
		return commands.AddMenuItemCommand{}, err
	}

	return commands.NewAddMenuItemCommand(i.Name, i.Description, i.Price, category, i.Available)
}

// ParseFloorPlan decodes the tables of a seed document. Every invalid table
// is reported.
func ParseFloorPlan(r io.Reader) ([]table.Table, error) {
	file, err := decode(r)
	if err != nil {
		return nil, err
	}

	tables := make([]table.Table, 0, len(file.Tables))
	var problems []error
	for i, t := range file.Tables {
		tbl, err := table.NewTable(t.ID, t.Capacity)
		if err != nil {
			problems = append(problems, fmt.Errorf("table %d: %w", i, err))
			continue
		}
		tables = append(tables, tbl)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return tables, nil
}

// ReadFloorPlanFile reads the tables of the seed file at path.
func ReadFloorPlanFile(path string) ([]table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed: %w", err)
	}
	defer f.Close()

	return ParseFloorPlan(f)
}

type menuItemAdder interface {
	Handle(ctx context.Context, cmd commands.AddMenuItemCommand) (menu.MenuItem, error)
}

// Loader puts seed items on the menu through the add-item command handler.
type Loader struct {
	handler menuItemAdder
	logger  *slog.Logger
}

func NewLoader(handler menuItemAdder, logger *slog.Logger) *Loader {
	return &Loader{
		handler: handler,
		logger:  logger.With("component", "menu-seed"),
	}
}

// LoadFile applies the seed file at path. Items whose name is already on the
// menu are skipped, so loading the same file twice is harmless.
func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed: %w", err)
	}
	defer f.Close()

	return l.Load(ctx, f)
}

// Load applies a seed document and returns the number of items added.
func (l *Loader) Load(ctx context.Context, r io.Reader) (int, error) {
	cmds, err := Parse(r)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, cmd := range cmds {
		item, err := l.handler.Handle(ctx, cmd)
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			l.logger.DebugContext(ctx, "menu item already present", "name", cmd.Draft().Name())
			continue
		}
		if err != nil {
			return added, fmt.Errorf("failed to add %q: %w", cmd.Draft().Name(), err)
		}
		added++
		l.logger.DebugContext(ctx, "menu item added", "id", item.ID(), "name", item.Name())
	}

	l.logger.InfoContext(ctx, "menu seed applied", "added", added, "total", len(cmds))
	return added, nil
}
