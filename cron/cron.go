package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tourguideapp/backend/models"
	"github.com/tourguideapp/backend/utils"
	"gorm.io/gorm"
)

// StartReminderJobs schedules the daily reminder mail for approved requests
// whose tour date is tomorrow. The returned scheduler should be stopped on
// shutdown.
func StartReminderJobs(database *gorm.DB) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 8 * * *", func() {
		sendTourReminders(database)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for tour reminders")
	return c
}

func sendTourReminders(database *gorm.DB) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	var requests []models.TourRequest
	err := database.Preload("Tour").Preload("Tourist").
		Where("status = ? AND request_date >= ? AND request_date < ?",
			models.StatusApproved, start, end).
		Find(&requests).Error
	if err != nil {
		log.Printf("Error fetching requests for reminders: %v", err)
		return
	}

	for _, request := range requests {
		if err := sendReminderEmail(&request); err != nil {
			log.Printf("Failed to send reminder for request %d: %v", request.ID, err)
			continue
		}
		log.Printf("Sent reminder for request %d to %s", request.ID, request.Tourist.Email)
	}
}

func sendReminderEmail(request *models.TourRequest) error {
	subject := fmt.Sprintf("Reminder: Upcoming Tour - %s", request.Tour.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your tour scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Tour:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>People:</strong> %d</li>
		</ul>
		<p>If you need to cancel, please do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Tour Guide Team</p>
	`, request.Tourist.Name, request.Tour.Title, request.Tour.Location,
		request.RequestDate.Format("2006-01-02"), request.PeopleCount)

	return utils.SendEmail(request.Tourist.Email, subject, body)
}
