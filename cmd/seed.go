package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load categories, medicines and couriers from a JSON file",
	Long: `Load a catalog from a JSON file of the form

  {
    "categories": [
      {"name": "Pain relief", "description": "...",
       "medicines": [{"name": "Paracetamol 500mg", "price": "2.50", "stock": 100}]}
    ],
    "deliveryBoys": [
      {"username": "ravi", "password": "...", "name": "Ravi", "phone": "+91 98765 43210"}
    ]
  }

Every entry is created through the same use cases as the admin API.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogging(cfg.Logging)

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		db, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}
		root := NewCompositionRoot(cfg, db)

		report, err := seed(cmd.Context(), f, seedHandlers{
			categories: root.CreateCreateCategoryCommandHandler(),
			medicines:  root.CreateCreateMedicineCommandHandler(),
			couriers:   root.CreateCreateCourierCommandHandler(),
		}, logger)
		if err != nil {
			return err
		}

		logger.Info().
			Int("categories", report.Categories).
			Int("medicines", report.Medicines).
			Int("delivery_boys", report.Couriers).
			Msg("seed complete")
		return nil
	},
}

type seedFile struct {
	Categories []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Medicines   []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Price       string `json:"price"`
			Stock       int    `json:"stock"`
		} `json:"medicines"`
	} `json:"categories"`
	DeliveryBoys []struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
	} `json:"deliveryBoys"`
}

type (
	categoryCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCategoryCommand) (kernel.ID, error)
	}
	medicineCreator interface {
		Handle(ctx context.Context, cmd commands.CreateMedicineCommand) (kernel.ID, error)
	}
	courierCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCourierCommand) (kernel.ID, error)
	}
)

type seedHandlers struct {
	categories categoryCreator
	medicines  medicineCreator
	couriers   courierCreator
}

type seedReport struct {
	Categories int
	Medicines  int
	Couriers   int
}

// seed creates every entry of the file in order and stops at the first
// failure; entries created before it are kept.
func seed(ctx context.Context, r io.Reader, h seedHandlers, logger zerolog.Logger) (seedReport, error) {
	var report seedReport

	var file seedFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return report, fmt.Errorf("decode seed file: %w", err)
	}

	for _, c := range file.Categories {
		cmd, err := commands.NewCreateCategoryCommand(c.Name, c.Description)
		if err != nil {
			return report, fmt.Errorf("category %q: %w", c.Name, err)
		}
		categoryID, err := h.categories.Handle(ctx, cmd)
		if err != nil {
			return report, fmt.Errorf("category %q: %w", c.Name, err)
		}
		report.Categories++
		logger.Debug().Stringer("id", categoryID).Str("name", c.Name).Msg("category created")

		for _, m := range c.Medicines {
			cmd, err := commands.NewCreateMedicineCommand(m.Name, m.Description, categoryID, m.Price, m.Stock)
			if err != nil {
				return report, fmt.Errorf("medicine %q: %w", m.Name, err)
			}
			if _, err := h.medicines.Handle(ctx, cmd); err != nil {
				return report, fmt.Errorf("medicine %q: %w", m.Name, err)
			}
			report.Medicines++
		}
	}

	for _, d := range file.DeliveryBoys {
		cmd, err := commands.NewCreateCourierCommand(d.Username, d.Password, d.Name, d.Phone)
		if err != nil {
			return report, fmt.Errorf("delivery boy %q: %w", d.Username, err)
		}
		if _, err := h.couriers.Handle(ctx, cmd); err != nil {
			return report, fmt.Errorf("delivery boy %q: %w", d.Username, err)
		}
		report.Couriers++
	}
	return report, nil
}
