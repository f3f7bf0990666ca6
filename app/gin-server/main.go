package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gepres/portafolio-2025-sub000/config"
	"github.com/gepres/portafolio-2025-sub000/internal/api/handlers"
	"github.com/gepres/portafolio-2025-sub000/internal/api/middleware"
	"github.com/gepres/portafolio-2025-sub000/internal/api/routes"
	"github.com/gepres/portafolio-2025-sub000/internal/cache"
	"github.com/gepres/portafolio-2025-sub000/internal/logger"
	"github.com/gepres/portafolio-2025-sub000/internal/render"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/services"
	"github.com/gepres/portafolio-2025-sub000/internal/storage"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Init MongoDB
	_, db, err := config.InitMongo(ctx)
	if err != nil {
		log.WithError(err).Fatal("MongoDB init error")
	}
	log.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(ctx, db); err != nil {
		log.WithError(err).Warn("failed to ensure MongoDB indexes")
	}

	// Init Redis. The API still works without it, just uncached.
	var cv cache.Cache
	if rdb, err := config.InitRedis(ctx); err != nil {
		log.WithError(err).Warn("Redis unavailable, running without cache")
	} else {
		log.Info("Redis connected")
		cv = cache.NewRedisCache(rdb)
	}

	// Object storage is optional in local dev; uploads and publishing
	// fail with a clear error when no bucket is configured.
	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		up, err := storage.NewGCSUploader(ctx, bucket)
		if err != nil {
			log.WithError(err).Fatal("GCS init error")
		}
		uploader = up
		log.WithField("bucket", bucket).Info("GCS storage ready")
	} else {
		log.Warn("GCS_BUCKET not set, uploads disabled")
	}

	// Repositories
	projects := mongorepo.NewProjectRepo(db)
	experiences := mongorepo.NewExperienceRepo(db)
	skills := mongorepo.NewSkillRepo(db)
	svcRepo := mongorepo.NewServiceRepo(db)
	interests := mongorepo.NewInterestRepo(db)
	competencies := mongorepo.NewCompetencyRepo(db)
	profile := mongorepo.NewProfileRepo(db)
	contact := mongorepo.NewContactRepo(db)
	education := mongorepo.NewCVEducationRepo(db)
	languages := mongorepo.NewCVLanguageRepo(db)
	adminUsers := mongorepo.NewAdminUserRepo(db)

	// Services
	authSvc := services.NewAuthService(adminUsers)
	projectSvc := services.NewProjectService(projects)
	experienceSvc := services.NewExperienceService(experiences, cv)
	skillSvc := services.NewSkillService(skills, cv)
	sectionSvc := services.NewSectionService(svcRepo, interests, competencies, cv)
	profileSvc := services.NewProfileService(profile, contact, cv)
	cvSvc := services.NewCVService(services.CVServiceDeps{
		Profile:      profile,
		Contact:      contact,
		Education:    education,
		Languages:    languages,
		Competencies: competencies,
		Skills:       skills,
		Experiences:  experiences,
		Cache:        cv,
		Renderer:     render.NewChromedpRenderer(),
		Uploader:     uploader,
		Log:          log,
	})
	seedSvc := services.NewSeedService(education, languages)
	uploadSvc := services.NewUploadService(uploader, projects, experiences)

	if err := authSvc.EnsureBootstrapAdmin(ctx); err != nil {
		log.WithError(err).Warn("failed to bootstrap admin account")
	}

	// Start Gin server
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:       handlers.NewAuthHandler(authSvc),
		Project:    handlers.NewProjectHandler(projectSvc),
		Experience: handlers.NewExperienceHandler(experienceSvc),
		Skill:      handlers.NewSkillHandler(skillSvc),
		Section:    handlers.NewSectionHandler(sectionSvc),
		Profile:    handlers.NewProfileHandler(profileSvc),
		CV:         handlers.NewCVHandler(cvSvc, seedSvc),
		Upload:     handlers.NewUploadHandler(uploadSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
