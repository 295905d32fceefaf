package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"eduquest/internal/models"
)

// ReportService sends progress summary emails via Amazon SES. Users
// without an email address on file are skipped.
type ReportService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	debug      bool
}

// NewReportService creates a new report service. An empty fromEmail
// yields a disabled service that skips all sends.
func NewReportService(awsRegion, fromEmail, fromName, appBaseURL string, debug bool) (*ReportService, error) {
	if fromEmail == "" {
		log.Println("Report service disabled: SES_FROM_EMAIL not configured")
		return &ReportService{enabled: false, debug: debug}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)
	log.Printf("Report service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &ReportService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		debug:      debug,
	}, nil
}

// IsEnabled returns whether the report service is enabled
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport emails a learner a summary of their current
// standing. Users with no email address are silently skipped.
func (s *ReportService) SendProgressReport(ctx context.Context, user *models.User) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): progress report to %s", user.Username)
		return nil
	}
	if user.Email == "" {
		if s.debug {
			log.Printf("[DEBUG] No email on file for %s, skipping report", user.Username)
		}
		return nil
	}

	completed := 0
	total := 0
	for _, topics := range user.Progress {
		for _, tp := range topics {
			total++
			if tp.Completed {
				completed++
			}
		}
	}

	subject := fmt.Sprintf("Your EduQuest Progress, %s", user.FullName)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #7c3aed; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.stat { display: inline-block; margin: 10px 20px 10px 0; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>EduQuest Progress Report</h1>
		</div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Here is where you stand in Class %d:</p>
			<p>
				<span class="stat">⭐ %d stars</span>
				<span class="stat">🔥 %d-day streak</span>
				<span class="stat">🏆 Level %d</span>
			</p>
			<p>You have completed %d of %d topics and watched %d videos. Keep it up!</p>
			<p><a href="%s">Continue learning on EduQuest</a></p>
		</div>
		<div class="footer">
			<p>This is an automated email from EduQuest. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, user.FullName, user.Class, user.Stars, user.Streak, user.Level, completed, total, user.TotalVideosWatched, s.appBaseURL)

	textBody := fmt.Sprintf(`Hi %s,

Here is where you stand in Class %d:

Stars: %d
Streak: %d days
Level: %d

You have completed %d of %d topics and watched %d videos. Keep it up!

Continue learning: %s

---
This is an automated email from EduQuest. Please do not reply.
`, user.FullName, user.Class, user.Stars, user.Streak, user.Level, completed, total, user.TotalVideosWatched, s.appBaseURL)

	return s.sendEmail(ctx, user.Email, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *ReportService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] SES message ID: %s", *result.MessageId)
	}
	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
