package template

import (
	"bytes"
	"fmt"
	htmlTemplate "html/template"
)

var partnershipHTML = htmlTemplate.Must(htmlTemplate.New("partnership").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Partnership Opportunity with {{.Company}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 8px; text-align: center; margin-bottom: 20px; }
        .content { background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
        .highlight { background: #e3f2fd; padding: 15px; border-left: 4px solid #2196f3; margin: 15px 0; }
        .benefits { background: white; padding: 15px; border-radius: 6px; margin: 15px 0; }
        .signature { background: white; padding: 20px; border-radius: 8px; border: 1px solid #e0e0e0; }
        ul { padding-left: 20px; }
        li { margin-bottom: 8px; }
        .brand-name { color: #2196f3; font-weight: bold; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Company}}</h1>
        <p>Partnership Opportunity</p>
    </div>

    <div class="content">
        <p>Dear <span class="brand-name">{{.BrandName}}</span> Team,</p>

        <p>I hope this email finds you well. My name is <strong>{{.SenderName}}</strong>, and I'm reaching out from {{.Company}}, an innovative platform that's revolutionizing the way consumers discover and connect with premium eyewear brands.</p>

        <div class="highlight">
            <p>We've been impressed by <span class="brand-name">{{.BrandName}}</span>'s commitment to quality and design excellence, and we believe there's a fantastic opportunity for collaboration between our platforms.</p>
        </div>

        <div class="benefits">
            <h3>{{.Company}} offers:</h3>
            <ul>
                <li>AI-powered brand discovery for targeted consumer matching</li>
                <li>Advanced analytics and market insights</li>
                <li>Direct consumer engagement tools</li>
                <li>Brand partnership opportunities</li>
            </ul>
        </div>

        <div class="benefits">
            <h3>We'd love to explore how we can work together to:</h3>
            <ul>
                <li>Increase <span class="brand-name">{{.BrandName}}</span>'s visibility among qualified prospects</li>
                <li>Provide valuable consumer insights and analytics</li>
                <li>Create collaborative marketing opportunities</li>
                <li>Drive qualified traffic to your brand</li>
            </ul>
        </div>

        <p>Would you be available for a brief <strong>15-minute call next week</strong> to discuss this opportunity? I'm confident we can create a mutually beneficial partnership that drives real value for <span class="brand-name">{{.BrandName}}</span>.</p>

        <p>Looking forward to hearing from you.</p>
    </div>

    <div class="signature">
        <p><strong>Best regards,</strong></p>
        <p><strong>{{.SenderName}}</strong><br>
        Partnership Development<br>
        {{.Company}}<br>
        <a href="mailto:{{.SenderEmail}}">{{.SenderEmail}}</a></p>
    </div>
</body>
</html>`))

// PartnershipHTML renders the HTML variant of the partnership pitch.
// The brand name passes through html/template auto-escaping.
func (e *Engine) PartnershipHTML(brandName string) (string, error) {
	data := struct {
		BrandName   string
		SenderName  string
		SenderEmail string
		Company     string
	}{
		BrandName:   brandName,
		SenderName:  e.identity.Name,
		SenderEmail: e.identity.Email,
		Company:     e.identity.Company,
	}

	var buf bytes.Buffer
	if err := partnershipHTML.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render partnership html: %w", err)
	}
	return buf.String(), nil
}
