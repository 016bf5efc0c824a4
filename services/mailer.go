// services/mailer.go - queued SMTP credential notifier
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
)

// CredentialMailer delivers freshly issued credentials. Registration
// enqueues after the database commit; delivery is best-effort and its
// outcome is never surfaced to the caller.
type CredentialMailer interface {
	QueueCredentials(creds *Credentials)
}

type Message struct {
	To      string
	Subject string
	Body    string
}

// SMTPMailer sends credential emails through a plain SMTP relay. Messages
// go onto a buffered queue drained by a single worker goroutine, so a slow
// or failing relay never blocks a registration response.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string

	queue chan Message
	done  chan struct{}
}

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		queue:    make(chan Message, 64),
		done:     make(chan struct{}),
	}
}

// Start launches the delivery worker.
func (m *SMTPMailer) Start() {
	go m.worker()
}

// Stop drains the queue and waits for the worker to exit.
func (m *SMTPMailer) Stop() {
	close(m.queue)
	<-m.done
}

func (m *SMTPMailer) worker() {
	defer close(m.done)
	for msg := range m.queue {
		if err := m.send(msg); err != nil {
			log.Printf("mailer: failed to send to %s: %v", msg.To, err)
		}
	}
}

// QueueCredentials builds one email per person and enqueues them. A full
// queue drops the message with a log line rather than blocking.
func (m *SMTPMailer) QueueCredentials(creds *Credentials) {
	leaderBody, err := renderMail(leaderMailTmpl, leaderMailData{
		TeamName:   creds.TeamName,
		Credential: creds.Leader,
	})
	if err != nil {
		log.Printf("mailer: failed to render leader email: %v", err)
	} else {
		m.enqueue(Message{
			To:      creds.Leader.Email,
			Subject: fmt.Sprintf("Your Team %s Registration Details", creds.TeamName),
			Body:    leaderBody,
		})
	}

	for _, member := range creds.Members {
		body, err := renderMail(memberMailTmpl, memberMailData{
			TeamName:   creds.TeamName,
			Credential: member,
			Leader:     creds.Leader,
		})
		if err != nil {
			log.Printf("mailer: failed to render member email: %v", err)
			continue
		}
		m.enqueue(Message{
			To:      member.Email,
			Subject: fmt.Sprintf("Welcome to Team %s", creds.TeamName),
			Body:    body,
		})
	}
}

func (m *SMTPMailer) enqueue(msg Message) {
	select {
	case m.queue <- msg:
	default:
		log.Printf("mailer: queue full, dropping email to %s", msg.To)
	}
}

func (m *SMTPMailer) send(msg Message) error {
	if m.host == "" {
		return fmt.Errorf("SMTP not configured")
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	headers := "From: \"Hackathon Team\" <" + m.from + ">\n" +
		"To: " + msg.To + "\n" +
		"Subject: " + msg.Subject + "\n" +
		"MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	payload := []byte(headers + msg.Body)

	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{msg.To}, payload)
}

type leaderMailData struct {
	TeamName   string
	Credential Credential
}

type memberMailData struct {
	TeamName   string
	Credential Credential
	Leader     Credential
}

var leaderMailTmpl = template.Must(template.New("leader").Parse(`
<h2>Welcome, {{.Credential.Name}}!</h2>
<p>Your team <strong>{{.TeamName}}</strong> has been successfully registered.</p>
<h3>Your Login Credentials:</h3>
<p><strong>Email:</strong> {{.Credential.Email}}</p>
<p><strong>Password:</strong> {{.Credential.Password}}</p>
<p><strong>Role:</strong> Team Leader</p>
<p>Please keep these credentials secure and don't share them with others.</p>
<p>You can now log in to the competition portal using these credentials.</p>
`))

var memberMailTmpl = template.Must(template.New("member").Parse(`
<h2>Welcome, {{.Credential.Name}}!</h2>
<p>You have been added to team <strong>{{.TeamName}}</strong>.</p>
<h3>Your Login Credentials:</h3>
<p><strong>Email:</strong> {{.Credential.Email}}</p>
<p><strong>Password:</strong> {{.Credential.Password}}</p>
<p><strong>Role:</strong> Team Member</p>
<p>Please keep these credentials secure and don't share them with others.</p>
<p>You can now log in to the competition portal using these credentials.</p>
<p>Team Leader: {{.Leader.Name}} ({{.Leader.Email}})</p>
`))

func renderMail(tmpl *template.Template, data interface{}) (string, error) {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
