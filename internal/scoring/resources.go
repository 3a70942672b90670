package scoring

// Resources are study tips and links for a category.
type Resources struct {
	Tips  []string
	Links []string
}

var learningResources = map[string]Resources{
	"Phishing Detection": {
		Tips: []string{
			"Always check sender email addresses carefully",
			"Hover over links before clicking to see the actual URL",
			"Be suspicious of urgent or threatening language",
			"Verify requests through official channels",
		},
		Links: []string{
			"https://www.phishing.org/phishing-examples",
			"https://www.consumer.ftc.gov/articles/how-recognize-and-avoid-phishing-scams",
		},
	},
	"Password Security": {
		Tips: []string{
			"Use 12+ character passwords with mixed case, numbers, and symbols",
			"Never reuse passwords across sites",
			"Use a password manager like Bitwarden or 1Password",
			"Enable two-factor authentication everywhere possible",
		},
		Links: []string{
			"https://www.security.org/how-secure-is-my-password/",
			"https://haveibeenpwned.com/",
		},
	},
	"Social Engineering": {
		Tips: []string{
			"Verify identities through independent channels",
			"Be skeptical of unsolicited requests for information",
			"Never share credentials or sensitive data over phone/email",
			"Question urgent or unusual requests",
		},
		Links: []string{
			"https://www.social-engineer.org/",
			"https://www.cisa.gov/social-engineering",
		},
	},
	"Malware Awareness": {
		Tips: []string{
			"Keep software and operating systems updated",
			"Use reputable antivirus/anti-malware software",
			"Don't download software from untrusted sources",
			"Be cautious with email attachments",
		},
		Links: []string{
			"https://www.malwarebytes.com/what-is-malware",
			"https://www.cisa.gov/sites/default/files/publications/Malware_WhitePaper.pdf",
		},
	},
	"Safe Browsing": {
		Tips: []string{
			"Look for HTTPS and the padlock icon",
			"Avoid clicking on suspicious pop-ups or ads",
			"Use browser extensions like uBlock Origin",
			"Keep your browser updated",
		},
		Links: []string{
			"https://safebrowsing.google.com/",
			"https://www.eff.org/https-everywhere",
		},
	},
}

// ResourcesFor returns study material for a category, if any is curated.
func ResourcesFor(category string) (Resources, bool) {
	r, ok := learningResources[category]
	return r, ok
}
