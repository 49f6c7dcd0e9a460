package project

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"houdeapp/dto"
	"houdeapp/middleware"
	"houdeapp/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func ProjectController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/api/projects", middleware.SessionMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListProjects(c, firestoreClient)
		})
		routes.POST("", func(c *gin.Context) {
			CreateProject(c, firestoreClient)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateProject(c, firestoreClient)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteProject(c, firestoreClient)
		})
	}

	router.GET("/api/projects/all", func(c *gin.Context) {
		AllProjects(c, firestoreClient)
	})
}

func ListProjects(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	docs, err := firestoreClient.Collection("Projects").
		Where("userid", "==", userId).
		OrderBy("createdat", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		log.Printf("List projects error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	projects := make([]model.Project, 0, len(docs))
	for _, doc := range docs {
		var project model.Project
		if err := doc.DataTo(&project); err != nil {
			log.Printf("List projects error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		projects = append(projects, project)
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func CreateProject(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	var request dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required."})
		return
	}

	projectid := uuid.New().String()
	newProject := model.Project{
		ProjectID:       projectid,
		UserID:          userId,
		Title:           strings.TrimSpace(request.Title),
		Description:     strings.TrimSpace(request.Description),
		TechnologyStack: request.TechnologyStack,
		Repo:            strings.TrimSpace(request.Repo),
		LiveURL:         strings.TrimSpace(request.LiveURL),
		Features:        request.Features,
		ImageURL:        strings.TrimSpace(request.ImageURL),
		IsPinned:        request.IsPinned,
		CreatedAt:       time.Now(),
	}
	if newProject.TechnologyStack == nil {
		newProject.TechnologyStack = []string{}
	}
	if newProject.Features == nil {
		newProject.Features = []string{}
	}

	ctx := context.Background()
	if _, err := firestoreClient.Collection("Projects").Doc(projectid).Set(ctx, newProject); err != nil {
		log.Printf("Create project error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": newProject})
}

// UpdateProject applies a partial update to an owned project; absent fields
// stay as they were.
func UpdateProject(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	id := c.Param("id")

	var request dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx := context.Background()
	docRef := firestoreClient.Collection("Projects").Doc(id)

	var project model.Project
	err := firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			return err
		}
		if err := docSnap.DataTo(&project); err != nil {
			return err
		}
		if project.UserID != userId {
			return status.Error(codes.NotFound, "not owned")
		}

		if request.Title != nil {
			project.Title = strings.TrimSpace(*request.Title)
		}
		if request.Description != nil {
			project.Description = strings.TrimSpace(*request.Description)
		}
		if request.TechnologyStack != nil {
			project.TechnologyStack = *request.TechnologyStack
		}
		if request.Repo != nil {
			project.Repo = strings.TrimSpace(*request.Repo)
		}
		if request.LiveURL != nil {
			project.LiveURL = strings.TrimSpace(*request.LiveURL)
		}
		if request.Features != nil {
			project.Features = *request.Features
		}
		if request.ImageURL != nil {
			project.ImageURL = strings.TrimSpace(*request.ImageURL)
		}

		return tx.Set(docRef, project)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found or unauthorized"})
			return
		}
		log.Printf("Update project error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func DeleteProject(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	id := c.Param("id")

	ctx := context.Background()
	docRef := firestoreClient.Collection("Projects").Doc(id)

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found or unauthorized"})
			return
		}
		log.Printf("Delete project error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	var project model.Project
	if err := docSnap.DataTo(&project); err != nil || project.UserID != userId {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found or unauthorized"})
		return
	}

	if _, err := docRef.Delete(ctx); err != nil {
		log.Printf("Delete project error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// AllProjects is the public portfolio listing: pinned entries first, then
// newest, with the owner id stripped from the payload.
func AllProjects(c *gin.Context, firestoreClient *firestore.Client) {
	ctx := context.Background()
	docs, err := firestoreClient.Collection("Projects").
		OrderBy("ispinned", firestore.Desc).
		OrderBy("createdat", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		log.Printf("All projects error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	projects := make([]model.Project, 0, len(docs))
	for _, doc := range docs {
		var project model.Project
		if err := doc.DataTo(&project); err != nil {
			log.Printf("All projects error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}
		project.UserID = "" // omitted from JSON, owner stays private
		projects = append(projects, project)
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}
