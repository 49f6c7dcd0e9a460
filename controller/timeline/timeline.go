package timeline

import (
	"context"
	"log"
	"net/http"
	"time"

	"houdeapp/dto"
	"houdeapp/middleware"
	"houdeapp/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TimelineController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/api/timeline", middleware.SessionMiddleware(), func(c *gin.Context) {
		CreateTimeline(c, firestoreClient)
	})
	router.GET("/api/timeline", func(c *gin.Context) {
		ListTimeline(c, firestoreClient)
	})
}

func CreateTimeline(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.CreateTimelineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields (eventDate, titles, or descriptions).",
		})
		return
	}

	eventDate, err := parseEventDate(request.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid eventDate"})
		return
	}

	eventid := uuid.New().String()
	newTimeline := model.Timeline{
		EventID:       eventid,
		EventDate:     eventDate,
		EnTitle:       request.EnTitle,
		ZnTitle:       request.ZnTitle,
		EnDescription: request.EnDescription,
		ZnDescription: request.ZnDescription,
		CreatedAt:     time.Now(),
	}

	ctx := context.Background()
	if _, err := firestoreClient.Collection("Timeline").Doc(eventid).Set(ctx, newTimeline); err != nil {
		log.Printf("Create timeline error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Timeline created successfully.",
		"timeline": newTimeline,
	})
}

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ListTimeline feeds the public history page, newest event first.
func ListTimeline(c *gin.Context, firestoreClient *firestore.Client) {
	ctx := context.Background()
	docs, err := firestoreClient.Collection("Timeline").
		OrderBy("eventdate", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		log.Printf("List timeline error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	timeline := make([]model.Timeline, 0, len(docs))
	for _, doc := range docs {
		var event model.Timeline
		if err := doc.DataTo(&event); err != nil {
			log.Printf("List timeline error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		timeline = append(timeline, event)
	}

	c.JSON(http.StatusOK, gin.H{"timeline": timeline})
}
