package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gepres/portafolio-2025-sub000/internal/api/handlers"
	"github.com/gepres/portafolio-2025-sub000/internal/api/middleware"
)

type Deps struct {
	Auth       *handlers.AuthHandler
	Project    *handlers.ProjectHandler
	Experience *handlers.ExperienceHandler
	Skill      *handlers.SkillHandler
	Section    *handlers.SectionHandler
	Profile    *handlers.ProfileHandler
	CV         *handlers.CVHandler
	Upload     *handlers.UploadHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/auth/login", d.Auth.Login)
	r.POST("/auth/google", d.Auth.Google)

	session := r.Group("/auth")
	session.Use(middleware.JWTAuth())
	session.GET("/me", d.Auth.Me)

	// Public reads used by the site itself.
	api := r.Group("/api")
	api.GET("/projects", d.Project.List)
	api.GET("/projects/featured", d.Project.Featured)
	api.GET("/projects/:id", d.Project.Get)
	api.GET("/experiences", d.Experience.List)
	api.GET("/experiences/:id", d.Experience.Get)
	api.GET("/skills", d.Skill.List)
	api.GET("/skills/grouped", d.Skill.Grouped)
	api.GET("/services", d.Section.ListServices)
	api.GET("/interests", d.Section.ListInterests)
	api.GET("/competencies", d.Section.ListCompetencies)
	api.GET("/profile", d.Profile.GetProfile)
	api.GET("/contact", d.Profile.GetContact)
	api.GET("/cv/data", d.CV.Data)
	api.GET("/cv/education", d.CV.ListEducation)
	api.GET("/cv/languages", d.CV.ListLanguages)
	api.GET("/cv/export", d.CV.Export)

	// Dashboard mutations (JWT + admin role)
	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())

	admin.POST("/projects", d.Project.Create)
	admin.PUT("/projects/:id", d.Project.Update)
	admin.DELETE("/projects/:id", d.Project.Delete)
	admin.POST("/projects/:id/image", d.Upload.ProjectImage)

	admin.POST("/experiences", d.Experience.Create)
	admin.PUT("/experiences/:id", d.Experience.Update)
	admin.DELETE("/experiences/:id", d.Experience.Delete)
	admin.POST("/experiences/:id/logo", d.Upload.ExperienceLogo)

	admin.POST("/skills", d.Skill.Create)
	admin.PUT("/skills/:id", d.Skill.Update)
	admin.DELETE("/skills/:id", d.Skill.Delete)

	admin.POST("/services", d.Section.CreateService)
	admin.PUT("/services/:id", d.Section.UpdateService)
	admin.DELETE("/services/:id", d.Section.DeleteService)

	admin.POST("/interests", d.Section.CreateInterest)
	admin.PUT("/interests/:id", d.Section.UpdateInterest)
	admin.DELETE("/interests/:id", d.Section.DeleteInterest)

	admin.POST("/competencies", d.Section.CreateCompetency)
	admin.PUT("/competencies/:id", d.Section.UpdateCompetency)
	admin.DELETE("/competencies/:id", d.Section.DeleteCompetency)

	admin.PUT("/profile", d.Profile.UpdateProfile)
	admin.PUT("/contact", d.Profile.UpdateContact)

	admin.POST("/cv/education", d.CV.CreateEducation)
	admin.PUT("/cv/education/:id", d.CV.UpdateEducation)
	admin.DELETE("/cv/education/:id", d.CV.DeleteEducation)

	admin.POST("/cv/languages", d.CV.CreateLanguage)
	admin.PUT("/cv/languages/:id", d.CV.UpdateLanguage)
	admin.DELETE("/cv/languages/:id", d.CV.DeleteLanguage)

	admin.POST("/cv/publish", d.CV.Publish)
	admin.POST("/cv/seed", d.CV.Seed)
}
