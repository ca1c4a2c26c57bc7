package cmd

import (
	"fmt"
	"time"

	progressadapter "github.com/bnema/cardsort-cli/internal/adapters/render/progress"
	tomlrepo "github.com/bnema/cardsort-cli/internal/adapters/repo/toml"
	"github.com/bnema/cardsort-cli/internal/application"
	"github.com/bnema/cardsort-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	sorter           *application.SorterService
	overviewRenderer func(application.Overview, progressadapter.RenderOptions) (string, error)
	now              func() time.Time
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	return &app{
		sorter:           application.NewSorterService(repo, ports.SystemClock{}),
		overviewRenderer: progressadapter.Render,
		now:              time.Now,
	}, nil
}
