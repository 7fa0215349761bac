package main

import (
	"errors"
	"fmt"
	"os"

	"brand-sell/pkg/config"
	"brand-sell/pkg/database"
	"brand-sell/pkg/jwt"
	"brand-sell/pkg/logger"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/model"
	"brand-sell/services/api/internal/repo/persistent"
	"brand-sell/services/api/internal/usecase"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	migrate      bool
	demoEmail    string
	demoPassword string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the template catalog and an optional demo account",
	Long: `Upsert the built-in landing and social templates by slug, so running the
command twice leaves one copy of each. With --demo-email a demo account is
registered unless it already exists.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log := logger.New()
		db, err := database.NewDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if migrate {
			if err := db.AutoMigrate(model.All()...); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		n, err := seedTemplates(persistent.NewTemplateRepository(db))
		if err != nil {
			return err
		}
		log.Info("Seeded %d templates", n)

		if demoEmail != "" {
			if err := seedDemoUser(db, cfg, log); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&migrate, "migrate", false, "create missing tables before seeding")
	rootCmd.Flags().StringVar(&demoEmail, "demo-email", "", "register a demo account with this email")
	rootCmd.Flags().StringVar(&demoPassword, "demo-password", "demo1234", "password of the demo account")
}

func seedTemplates(repo persistent.TemplateRepository) (int, error) {
	catalog := templateCatalog()
	for _, tpl := range catalog {
		if err := repo.Upsert(tpl); err != nil {
			return 0, fmt.Errorf("failed to seed template %s: %w", tpl.Slug, err)
		}
	}
	return len(catalog), nil
}

func seedDemoUser(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	auth := usecase.NewAuthUseCase(persistent.NewUserRepository(db), jwt.NewService(cfg.JWTSecret), nil, log)

	user, _, err := auth.Register("Demo", demoEmail, demoPassword)
	if errors.Is(err, usecase.ErrEmailTaken) {
		log.Info("Demo account %s already exists", demoEmail)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create demo account: %w", err)
	}

	log.Info("Created demo account %s (%s)", user.Email, user.ID)
	return nil
}

func templateCatalog() []*entity.Template {
	return []*entity.Template{
		{
			Name:        "Hero classique",
			Slug:        "landing-hero-classic",
			Category:    entity.TemplateCategoryLanding,
			Description: "Titre, sous-titre, bénéfices et appel à l'action centré.",
			Layout:      []byte(`{"sections":["hero","benefits","features","testimonials","cta"]}`),
		},
		{
			Name:        "Problème / Solution",
			Slug:        "landing-problem-solution",
			Category:    entity.TemplateCategoryLanding,
			Description: "Met en avant la douleur du client avant de présenter l'offre.",
			Layout:      []byte(`{"sections":["hero","problems","solution","benefits","guarantee","cta"]}`),
		},
		{
			Name:        "Lancement produit",
			Slug:        "landing-product-launch",
			Category:    entity.TemplateCategoryLanding,
			Description: "Page courte orientée conversion avec prix et garantie.",
			Layout:      []byte(`{"sections":["hero","offer","pricing","faq","cta"]}`),
		},
		{
			Name:        "Carte réseaux sociaux",
			Slug:        "social-card",
			Category:    entity.TemplateCategorySocial,
			Description: "Visuel carré avec accroche et hashtags.",
			Layout:      []byte(`{"format":"1:1","blocks":["hook","body","hashtags"]}`),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
