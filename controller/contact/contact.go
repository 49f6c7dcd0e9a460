package contact

import (
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"

	"houdeapp/dto"
	"houdeapp/services"

	"github.com/gin-gonic/gin"
)

func ContactController(router *gin.Engine) {
	router.POST("/api/contact", func(c *gin.Context) {
		SendInquiry(c)
	})
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SendInquiry mails the inquiry to the site owner and an auto-reply to the
// visitor. Both sends are attempted even if one fails; the response carries
// per-recipient status when anything went wrong.
func SendInquiry(c *gin.Context) {
	var request dto.ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	name := strings.TrimSpace(request.Name)
	email := strings.ToLower(strings.TrimSpace(request.Email))
	inquiry := strings.TrimSpace(request.Inquiry)

	if name == "" || email == "" || inquiry == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}
	if !emailRegex.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email"})
		return
	}

	config, err := services.LoadEmailConfig()
	if err != nil {
		log.Printf("Contact error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	toEmail := os.Getenv("CONTACT_TO_EMAIL")
	if toEmail == "" {
		toEmail = config.Username
	}
	fromName := os.Getenv("CONTACT_FROM_NAME")
	if fromName == "" {
		fromName = "Website Contact"
	}

	adminBody := services.GenerateInquiryEmailContent(name, email, inquiry)
	replyBody := services.GenerateAutoReplyContent(name, inquiry, fromName)

	var wg sync.WaitGroup
	var adminErr, replyErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		adminErr = services.SendingEmail(toEmail, "New Inquiry: "+name, adminBody, email)
	}()
	go func() {
		defer wg.Done()
		replyErr = services.SendingEmail(email, "We received your inquiry - Houde Handbag", replyBody, "")
	}()
	wg.Wait()

	if adminErr != nil || replyErr != nil {
		log.Printf("Contact send results: admin=%v reply=%v", adminErr, replyErr)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Email send failed",
			"details": gin.H{
				"admin": sendStatus(adminErr),
				"reply": sendStatus(replyErr),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sent"})
}

func sendStatus(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}
