// Package template produces outreach email text. Generation is plain
// string substitution: the same inputs always yield the same output.
package template

import (
	"fmt"
	"strings"
)

// Tone selects the wording of a generated outreach email.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneCreative     Tone = "creative"
)

// ParseTone maps a request value to a known tone. Unknown values fall
// back to professional.
func ParseTone(s string) Tone {
	switch Tone(strings.ToLower(s)) {
	case ToneCasual:
		return ToneCasual
	case ToneCreative:
		return ToneCreative
	default:
		return ToneProfessional
	}
}

// Identity is the sender block appended to outreach templates. It is
// injected at construction so the engine carries no process-wide state.
type Identity struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Company string `yaml:"company"`
}

// DefaultIdentity is used when the config leaves the sender block empty.
var DefaultIdentity = Identity{
	Name:    "[Your Name]",
	Email:   "partnerships@sunglassai.com",
	Company: "SunglassAI",
}

// Email is a generated subject and body pair.
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Content renders the email as a flat text block with the subject as
// the first line, the wire format of the original campaign exports.
func (e Email) Content() string {
	return "Subject: " + e.Subject + "\n\n" + e.Body
}

// Engine generates outreach emails for a fixed sender identity.
type Engine struct {
	identity Identity
}

// NewEngine creates an engine for the given sender. Zero-value fields
// fall back to DefaultIdentity.
func NewEngine(id Identity) *Engine {
	if id.Name == "" {
		id.Name = DefaultIdentity.Name
	}
	if id.Email == "" {
		id.Email = DefaultIdentity.Email
	}
	if id.Company == "" {
		id.Company = DefaultIdentity.Company
	}
	return &Engine{identity: id}
}

// Identity returns the sender identity the engine renders with.
func (e *Engine) Identity() Identity {
	return e.identity
}

// Generate returns the tone-selected outreach email for a brand. The
// ceoName personalizes the greeting when present; the brand name is
// interpolated as-is without validation.
func (e *Engine) Generate(brandName, ceoName string, tone Tone) Email {
	switch tone {
	case ToneCasual:
		return Email{
			Subject: fmt.Sprintf("Exciting Partnership Idea for %s", brandName),
			Body: fmt.Sprintf(`Hi %s!

Hope you're having a great day! I came across %s and was really impressed by what you're doing in the sunglasses space.

I'd love to chat about some partnership ideas that could be a win-win for both of us.

Would you be interested in a quick call this week?

Cheers,
%s`, greeting(ceoName, "there"), brandName, e.identity.Name),
		}
	case ToneCreative:
		return Email{
			Subject: fmt.Sprintf("%s x %s - A Vision Worth Exploring", brandName, e.identity.Company),
			Body: fmt.Sprintf(`Hello %s,

In a world where style meets substance, %s has carved out something special in the sunglasses industry.

I'm writing to propose a creative collaboration that could amplify both our brands' reach and impact.

The future of eyewear partnerships is bright - let's talk about how we can make it even brighter together.

Looking forward to your thoughts,
%s`, greeting(ceoName, "Creative Team"), brandName, e.identity.Name),
		}
	default:
		return Email{
			Subject: fmt.Sprintf("Partnership Opportunity with %s", brandName),
			Body: fmt.Sprintf(`Dear %s,

I hope this email finds you well. I'm reaching out to explore potential partnership opportunities between our organizations and %s.

Given %s's strong presence in the sunglasses market and commitment to quality, I believe there could be significant mutual benefits in collaborating.

I would love to schedule a brief call to discuss how we might work together to create value for both our brands.

Best regards,
%s`, greeting(ceoName, "Team"), brandName, brandName, e.identity.Name),
		}
	}
}

// Partnership returns the fixed partnership-pitch template used by the
// discovery flow, sender identity block included.
func (e *Engine) Partnership(brandName string) string {
	return fmt.Sprintf(`Dear %s Team,

I hope this email finds you well. My name is %s, and I'm reaching out from %s, an innovative platform that's revolutionizing the way consumers discover and connect with premium eyewear brands.

We've been impressed by %s's commitment to quality and design excellence, and we believe there's a fantastic opportunity for collaboration between our platforms.

%s offers:
- AI-powered brand discovery for targeted consumer matching
- Advanced analytics and market insights
- Direct consumer engagement tools
- Brand partnership opportunities

We'd love to explore how we can work together to:
- Increase %s's visibility among qualified prospects
- Provide valuable consumer insights and analytics
- Create collaborative marketing opportunities
- Drive qualified traffic to your brand

Would you be available for a brief 15-minute call next week to discuss this opportunity? I'm confident we can create a mutually beneficial partnership that drives real value for %s.

Looking forward to hearing from you.

Best regards,
%s
%s Partnership Team
%s`, brandName, e.identity.Name, e.identity.Company,
		brandName,
		e.identity.Company,
		brandName,
		brandName,
		e.identity.Name, e.identity.Company, e.identity.Email)
}

// PartnershipSubject is the subject line paired with Partnership.
func (e *Engine) PartnershipSubject() string {
	return "Partnership Opportunity with " + e.identity.Company
}

func greeting(ceoName, fallback string) string {
	if ceoName == "" {
		return fallback
	}
	return ceoName
}
