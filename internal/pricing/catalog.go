package pricing

// Feature is a catalog entry for an optional add-on.
type Feature struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int    `json:"price"`
	MonthlyCost    int    `json:"monthlyCost"`
	AlwaysIncluded bool   `json:"alwaysIncluded"`
	Category       string `json:"category"`
}

// Selection pairs a catalog feature with the per-session enabled flag.
// AlwaysIncluded features are treated as enabled regardless of the flag.
type Selection struct {
	Feature
	Enabled bool `json:"enabled"`
}

var catalog = []Feature{
	{ID: "responsive-design", Name: "Responsive Design", Description: "Layouts that adapt to every screen size", Price: 0, MonthlyCost: 0, AlwaysIncluded: true, Category: "core"},
	{ID: "seo-basic", Name: "On-Page SEO", Description: "Semantic markup, metadata and sitemap", Price: 0, MonthlyCost: 0, AlwaysIncluded: true, Category: "core"},
	{ID: "ssl-security", Name: "SSL & Security Hardening", Description: "HTTPS everywhere with security headers", Price: 0, MonthlyCost: 0, AlwaysIncluded: true, Category: "core"},
	{ID: "contact-form", Name: "Contact Form", Description: "Spam-protected contact form with email notifications", Price: 0, MonthlyCost: 0, AlwaysIncluded: true, Category: "core"},
	{ID: "cms", Name: "Content Management", Description: "Edit pages and media without a developer", Price: 500, MonthlyCost: 29, Category: "content"},
	{ID: "blog", Name: "Blog", Description: "Publishing workflow with categories and RSS", Price: 500, MonthlyCost: 25, Category: "content"},
	{ID: "multilingual", Name: "Multilingual", Description: "Translated content with language switching", Price: 750, MonthlyCost: 39, Category: "content"},
	{ID: "booking", Name: "Booking & Scheduling", Description: "Appointment calendar with reminders", Price: 500, MonthlyCost: 35, Category: "commerce"},
	{ID: "payments", Name: "Payment Processing", Description: "Card and wallet payments with invoicing", Price: 750, MonthlyCost: 59, Category: "commerce"},
	{ID: "user-accounts", Name: "User Accounts", Description: "Registration, login and customer profiles", Price: 750, MonthlyCost: 49, Category: "platform"},
	{ID: "crm-integration", Name: "CRM Integration", Description: "Two-way sync with your CRM pipeline", Price: 500, MonthlyCost: 45, Category: "integration"},
	{ID: "integrations", Name: "Third-Party Integrations", Description: "Connect external tools and APIs", Price: 500, MonthlyCost: 35, Category: "integration"},
	{ID: "analytics", Name: "Analytics Dashboard", Description: "Traffic and conversion reporting", Price: 500, MonthlyCost: 19, Category: "marketing"},
	{ID: "newsletter", Name: "Newsletter", Description: "Signup forms and campaign integration", Price: 500, MonthlyCost: 29, Category: "marketing"},
	{ID: "live-chat", Name: "Live Chat", Description: "On-site chat widget with email fallback", Price: 500, MonthlyCost: 39, Category: "marketing"},
}

// Catalog returns a copy of the static feature catalog.
func Catalog() []Feature {
	out := make([]Feature, len(catalog))
	copy(out, catalog)
	return out
}

// Select builds a Selection list from the catalog, enabling the features
// whose IDs appear in enabledIDs. Unknown IDs are ignored.
func Select(enabledIDs []string) []Selection {
	enabled := make(map[string]bool, len(enabledIDs))
	for _, id := range enabledIDs {
		enabled[id] = true
	}
	out := make([]Selection, 0, len(catalog))
	for _, f := range catalog {
		out = append(out, Selection{Feature: f, Enabled: enabled[f.ID]})
	}
	return out
}
