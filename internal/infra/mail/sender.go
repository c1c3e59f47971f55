package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var alertTemplate = template.Must(template.New("followup").Parse(`
<p>Hi {{.BdaName}},</p>
<p>The lead <strong>{{.LeadName}}</strong> has a follow-up scheduled for
{{.Date}} and is currently <strong>{{.Bucket}}</strong>.</p>
<p>— PipeTrack</p>
`))

type alertData struct {
	BdaName  string
	LeadName string
	Date     string
	Bucket   string
}

// SendFollowUpAlert mails one follow-up reminder to the lead's BDA.
func (s *EmailSender) SendFollowUpAlert(to, bdaName, leadName, date, bucket string) error {
	var body bytes.Buffer
	err := alertTemplate.Execute(&body, alertData{
		BdaName:  bdaName,
		LeadName: leadName,
		Date:     date,
		Bucket:   bucket,
	})
	if err != nil {
		return fmt.Errorf("rendering follow-up alert: %w", err)
	}

	subject := fmt.Sprintf("Follow-up %s: %s", bucket, leadName)

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending follow-up alert via SMTP: %w", err)
	}
	return nil
}
