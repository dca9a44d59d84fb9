package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"rental_portal/internal/usecase/interfaces"
)

const layout = `<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #1f2937; max-width: 560px; margin: 0 auto;">
<h2 style="color: #0f766e;">{{.Brand}}</h2>
<p>Hello {{.Name}},</p>
{{template "body" .}}
<p style="color: #6b7280; font-size: 12px;">This is an automated message from {{.Brand}}. Please do not reply.</p>
</body>
</html>`

var bodies = map[string]string{
	interfaces.TemplateApplicationStatus: `
<p>Your rental application has been <strong>{{.Status}}</strong>.</p>
{{if .Notes}}<p>Notes from management: {{.Notes}}</p>{{end}}
<p>{{.Next}}</p>
{{if .Approved}}<p><a href="{{.Link}}">Go to your tenant portal</a></p>{{end}}`,

	interfaces.TemplateAgreementReady: `
<p>Your tenancy agreement is ready for your signature.</p>
<table>
<tr><td>Lease start</td><td>{{.LeaseStart}}</td></tr>
<tr><td>Lease end</td><td>{{.LeaseEnd}}</td></tr>
<tr><td>Monthly rent</td><td>{{.MonthlyRent}}</td></tr>
</table>
<p><a href="{{.Link}}">Review and sign the agreement</a></p>`,

	interfaces.TemplateRentReminder: `
{{if .Overdue}}<p style="color: #b91c1c;"><strong>Your {{.Label}} payment of {{.Amount}} for {{.Unit}} was due on {{.DueDate}} and is now overdue.</strong></p>
<p>Please settle it as soon as possible to avoid further action.</p>
{{else}}<p>This is a friendly reminder that your {{.Label}} payment of {{.Amount}} for {{.Unit}} is due on {{.DueDate}}.</p>{{end}}
<p><a href="{{.Link}}">View your payments</a></p>`,

	interfaces.TemplateLeaseExpiring: `
<p>Your lease for {{.Unit}} expires in <strong>{{.DaysRemaining}} days</strong>, on {{.LeaseEnd}}.</p>
<p>Please contact management to discuss renewal or move-out arrangements.</p>
<p><a href="{{.Link}}">Open your tenant portal</a></p>`,

	interfaces.TemplateMaintenanceUpdate: `
<p>Your maintenance request <strong>{{.Title}}</strong> is now <strong>{{.Status}}</strong>.</p>
<p><a href="{{.Link}}">Track your requests</a></p>`,

	interfaces.TemplateCredentials: `
<p>Your tenant portal account is ready.</p>
<table>
<tr><td>Room number</td><td><strong>{{.RoomNumber}}</strong></td></tr>
<tr><td>Passcode</td><td><strong>{{.Passcode}}</strong></td></tr>
</table>
<p>You will be asked to choose a new passcode the first time you sign in.</p>
<p><a href="{{.LoginURL}}">Sign in</a></p>`,
}

// Templates renders notification emails. Every body shares the layout.
type Templates struct {
	byName map[string]*template.Template
}

func NewTemplates() (*Templates, error) {
	base, err := template.New("layout").Option("missingkey=error").Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	t := &Templates{byName: make(map[string]*template.Template, len(bodies))}
	for name, body := range bodies {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		clone.Option("missingkey=error")
		if _, err := clone.New("body").Parse(body); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		t.byName[name] = clone
	}
	return t, nil
}

func (t *Templates) Render(name string, data map[string]any) (string, error) {
	tmpl, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
