package main

import (
	"context"
	"errors"
	"log"
	"os"

	"BrLegalAPI/external/s3"
	"BrLegalAPI/internal/db"
	"BrLegalAPI/internal/model"
	"BrLegalAPI/internal/repository"
	"BrLegalAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// newRouter builds the route table once, from explicit service
// references. Shared with the endpoint tests.
func newRouter(
	userSvc *services.UserService,
	stateSvc *services.StateService,
	districtSvc *services.CourtDistrictService,
	tagSvc *services.AttrService[model.Tag],
	ingredientSvc *services.AttrService[model.Ingredient],
	recipeSvc *services.RecipeService,
) *echo.Echo {
	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())

	api := e.Group("/api")
	registerUserRoutes(api, userSvc)

	geo := api.Group("/geo")
	registerStateRoutes(geo, stateSvc, userSvc)
	registerCourtDistrictRoutes(geo, districtSvc, stateSvc, userSvc)

	recipe := api.Group("/recipe")
	registerTagRoutes(recipe, tagSvc, userSvc)
	registerIngredientRoutes(recipe, ingredientSvc, userSvc)
	registerRecipeRoutes(recipe, recipeSvc, tagSvc, ingredientSvc, userSvc)

	return e
}

func main() {
	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	if err := db.Migrate(ctx, os.Getenv("DATABASE_URL")); err != nil {
		log.Fatal(err)
	}
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	var images services.ImageStore
	if os.Getenv("USE_S3_IMAGES") == "true" {
		images, err = s3.NewImageStore(ctx)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		root := os.Getenv("MEDIA_ROOT")
		if root == "" {
			root = "media"
		}
		images = services.NewLocalImageStore(root)
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)
	stateRepo := repository.NewStateRepository(pool)
	districtRepo := repository.NewCourtDistrictRepository(pool)
	tagRepo := repository.NewTagRepository(pool)
	ingredientRepo := repository.NewIngredientRepository(pool)
	recipeRepo := repository.NewRecipeRepository(pool)

	// ======================
	// SERVICES
	// ======================
	userSvc := services.NewUserService(userRepo, tokenRepo)
	stateSvc := services.NewStateService(stateRepo)
	districtSvc := services.NewCourtDistrictService(districtRepo, stateRepo)
	tagSvc := services.NewAttrService[model.Tag](tagRepo)
	ingredientSvc := services.NewAttrService[model.Ingredient](ingredientRepo)
	recipeSvc := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, images)

	// Optional superuser bootstrap.
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		_, err := userSvc.CreateSuperuser(ctx, email, os.Getenv("ADMIN_PASSWORD"))
		if err != nil && !errors.Is(err, model.ErrEmailExists) {
			log.Fatal(err)
		}
	}

	// ======================
	// ECHO
	// ======================
	e := newRouter(userSvc, stateSvc, districtSvc, tagSvc, ingredientSvc, recipeSvc)
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
