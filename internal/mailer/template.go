package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"onboard/internal/roster"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<html>
<body>
    <h2>Welcome to Our Team, {{.Name}}!</h2>

    <p>We're excited to have you join the <strong>{{.Department}}</strong> department.</p>

    <h3>Your Details:</h3>
    <ul>
        <li><strong>Start Date:</strong> {{.StartDate}}</li>
        <li><strong>Department:</strong> {{.Department}}</li>
        <li><strong>Manager:</strong> {{.Manager}}</li>
    </ul>

    <h3>Next Steps:</h3>
    <ol>
        <li>Your manager will contact you within 24 hours</li>
        <li>HR will send you onboarding documents</li>
        <li>IT will setup your accounts and equipment</li>
    </ol>

    <p>If you have any questions, please don't hesitate to reach out!</p>

    <p>Best regards,<br>
    {{.FromName}}</p>
</body>
</html>
`))

type welcomeData struct {
	Name       string
	Department string
	StartDate  string
	Manager    string
	FromName   string
}

// WelcomeSubject returns the subject line for an employee's welcome email.
func WelcomeSubject(emp roster.Employee) string {
	return fmt.Sprintf("Welcome to the team, %s!", emp.Name)
}

// RenderWelcomeBody renders the fixed HTML welcome body for an employee.
func RenderWelcomeBody(emp roster.Employee, fromName string) (string, error) {
	var builder strings.Builder
	data := welcomeData{
		Name:       emp.Name,
		Department: roster.CanonicalDepartment(emp.Department),
		StartDate:  emp.StartDate,
		Manager:    emp.Manager,
		FromName:   fromName,
	}
	if err := welcomeTemplate.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("render welcome body: %w", err)
	}
	return builder.String(), nil
}
