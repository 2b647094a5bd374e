package form

// Built-in form specs. Alias lists collect every raw key name the studio's
// historical form versions are known to have submitted, in priority order;
// the first non-empty match wins.

func builtinSpecs() []*Spec {
	return []*Spec{
		artistSpec(),
		staffSpec(),
		backofficeSpec(),
		bookingSpec(),
	}
}

func artistSpec() *Spec {
	return &Spec{
		Name:         "artist",
		Title:        "New Artist Application",
		Honeypots:    []string{"hp_extra_info", "hp"},
		Subject:      "Application: {{.Name}} ({{.Position}})",
		NotifyField:  "notify_email",
		Confirmation: "artist_received",
		Fields: []Field{
			{Name: "full_name", Label: "Name", Kind: KindText, Required: true,
				Aliases: []string{"name", "fullName", "full_name", "applicant_name"}},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true,
				Aliases: []string{"email", "applicant_email"}},
			{Name: "phone", Label: "Phone", Kind: KindText, Required: true,
				Aliases: []string{"phone", "phone_number", "tel"}},
			{Name: "city", Label: "City/Location", Kind: KindText, Required: true,
				Aliases: []string{"city", "location", "city_location"}},
			{Name: "position", Label: "Position", Kind: KindText, Default: "Artist",
				Aliases: []string{"position", "role", "applying_for"}},
			{Name: "instagram_handle", Label: "Instagram Handle", Kind: KindHandle, Required: true,
				Aliases: []string{"instagram_handle", "ig_handle", "resume_link"}},
			{Name: "q_proud", Label: "What must your work represent in five years for you to feel proud?", Kind: KindLongText, Required: true,
				Aliases: []string{"q_proud", "about", "fiveYear"}},
			{Name: "q_commitment", Label: "Tell us about a long-term commitment you kept and why it mattered.", Kind: KindLongText, Required: true,
				Aliases: []string{"q_commitment", "ownership_story", "longCommit"}},
			{Name: "agree_sanitation", Label: "Agrees to sanitation & compliance standards", Kind: KindBool, Required: true,
				Aliases: []string{"consent", "agree_sanitation", "agree", "compliance"}},
			{Name: "video_url", Label: "Video URL", Kind: KindURL, OmitBlank: true,
				Aliases: []string{"video_url", "videoLink"}},
			{Name: "source", Label: "Source", Kind: KindText, OmitBlank: true,
				Aliases: []string{"source", "source_link"}},
			{Name: "notify_email", Label: "Notify", Kind: KindEmail, Hidden: true,
				Aliases: []string{"recipient", "notify_email"}},
		},
	}
}

func staffSpec() *Spec {
	return &Spec{
		Name:         "staff",
		Title:        "New Staff Application",
		Honeypots:    []string{"hp"},
		Subject:      "New STAFF application — {{.Name}}{{if .Position}} ({{.Position}}){{end}}",
		NotifyField:  "notify_email",
		Confirmation: "staff_received",
		Fields: []Field{
			{Name: "full_name", Label: "Name", Kind: KindText, Required: true,
				Aliases: []string{"fullName", "name", "full_name", "applicant_name"}},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true,
				Aliases: []string{"email", "staff_email"}},
			{Name: "phone", Label: "Phone", Kind: KindText, Required: true,
				Aliases: []string{"phone", "phone_number", "tel"}},
			{Name: "city", Label: "City/Location", Kind: KindText, Required: true,
				Aliases: []string{"city", "location", "city_location"}},
			{Name: "position", Label: "Position/Role", Kind: KindText, OmitBlank: true,
				Aliases: []string{"position", "role", "job", "applying_for"}},
			{Name: "availability", Label: "Availability", Kind: KindText, OmitBlank: true,
				Aliases: []string{"availability", "start_date", "start", "when_available"}},
			{Name: "q_about", Label: "What do you need from a workplace to feel secure and grow?", Kind: KindLongText, Required: true,
				Aliases: []string{"about", "q_about", "needFromWorkplace", "experience", "notes"}},
			{Name: "q_ownership", Label: "Tell us about a time you took ownership when something went wrong.", Kind: KindLongText, Required: true,
				Aliases: []string{"ownership_story", "q_ownership", "ownershipStory", "ownership"}},
			{Name: "portfolio", Label: "Portfolio", Kind: KindURL, OmitBlank: true,
				Aliases: []string{"portfolio", "portfolio_link", "website", "url", "link"}},
			{Name: "resume_link", Label: "Resume/Video", Kind: KindURL, OmitBlank: true,
				Aliases: []string{"resume_link", "video_url", "cv_link", "drive"}},
			{Name: "agree_policies", Label: "Agrees to policies", Kind: KindBool, Required: true,
				Aliases: []string{"agree_policies", "consent", "agree", "agree_sanitation", "proceduresConsent"}},
			{Name: "source", Label: "Source", Kind: KindText, OmitBlank: true,
				Aliases: []string{"source"}},
			{Name: "notify_email", Label: "Notify", Kind: KindEmail, Hidden: true,
				Aliases: []string{"recipient", "notify_email"}},
		},
	}
}

func backofficeSpec() *Spec {
	return &Spec{
		Name:         "backoffice",
		Title:        "Back Office Application",
		Honeypots:    []string{"hp_extra_info"},
		Subject:      "New BACK OFFICE application — {{.Name}}",
		NotifyField:  "notify_email",
		Confirmation: "backoffice_received",
		Fields: []Field{
			{Name: "role", Label: "Role", Kind: KindText, Default: "Back Office (Staff)",
				Aliases: []string{"role"}},
			{Name: "full_name", Label: "Full Name", Kind: KindText, Required: true,
				Aliases: []string{"fullName", "name", "applicant_name", "full_name"}},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true,
				Aliases: []string{"email", "applicant_email"}},
			{Name: "phone", Label: "Phone", Kind: KindText, Required: true,
				Aliases: []string{"phone", "tel", "phone_number"}},
			{Name: "city", Label: "City/Location", Kind: KindText, Required: true,
				Aliases: []string{"city", "location", "city_location"}},
			{Name: "q_need", Label: "What do you need from a workplace to feel secure and grow?", Kind: KindLongText, Required: true,
				Aliases: []string{"about", "answer1", "q1", "why_fit", "what_you_need", "what_do_you_need"}},
			{Name: "q_ownership", Label: "Ownership story (when something went wrong)", Kind: KindLongText, Required: true, Fallback: true,
				Aliases: []string{
					"ownershipStory", "ownership_story", "ownershipstory", "ownership-story",
					"ownership", "answer2", "q2", "story",
					"when_something_went_wrong", "something_went_wrong", "what_went_wrong", "went_wrong",
					"documented", "maintained_order", "made_work_easier",
				}},
			{Name: "resume_link", Label: "Resume / Portfolio / Video URL", Kind: KindURL, Required: true,
				Aliases: []string{"resumeUrl", "resume_link", "video_url", "cv_link", "portfolio", "portfolio_url", "link", "url"}},
			{Name: "agree_policies", Label: "Agrees to policies", Kind: KindBool,
				Aliases: []string{"consentProcedures", "consent", "agree", "agree_sanitation"}},
			{Name: "source", Label: "Source", Kind: KindText, OmitBlank: true,
				Aliases: []string{"source"}},
			{Name: "page", Label: "Page", Kind: KindText, OmitBlank: true,
				Aliases: []string{"page"}},
			{Name: "user_agent", Label: "User Agent", Kind: KindText, OmitBlank: true,
				Aliases: []string{"userAgent", "user_agent"}},
			{Name: "notify_email", Label: "Notify", Kind: KindEmail, Hidden: true,
				Aliases: []string{"recipient", "notify_email"}},
		},
	}
}

func bookingSpec() *Spec {
	return &Spec{
		Name:        "booking",
		Title:       "Seven Tattoo — Booking Intake",
		Honeypots:   []string{"website"},
		Subject:     "Booking Intake — {{.Name}}{{if .Fields.scale}} ({{.Fields.scale}}{{if .Fields.placement}}, {{.Fields.placement}}{{end}}){{end}}",
		NotifyField: "notify_email",
		Fields: []Field{
			{Name: "meaning", Label: "Meaning", Kind: KindLongText, Required: true,
				Aliases: []string{"meaning"}},
			{Name: "vision", Label: "Vision", Kind: KindLongText, Required: true, MaxLen: 4000,
				Aliases: []string{"vision"}},
			{Name: "full_name", Label: "Full Name", Kind: KindText, Required: true,
				Aliases: []string{"fullName", "full_name", "name"}},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true,
				Aliases: []string{"email"}},
			{Name: "phone", Label: "Phone", Kind: KindText, Required: true,
				Aliases: []string{"phone"}},
			{Name: "placement", Label: "Placement", Kind: KindText, Required: true,
				Aliases: []string{"placement"}},
			{Name: "scale", Label: "Scale", Kind: KindText, Required: true,
				Aliases: []string{"scale"}},
			{Name: "hear", Label: "Heard About Us", Kind: KindText, Required: true,
				Aliases: []string{"hear", "how_did_you_hear"}},
			{Name: "agree_review", Label: "Consent", Kind: KindBool, Required: true,
				Aliases: []string{"consent"}},
			{Name: "artist", Label: "Artist (param)", Kind: KindText, OmitBlank: true,
				Aliases: []string{"artist"}},
			{Name: "source_link", Label: "Source Link", Kind: KindURL, OmitBlank: true,
				Aliases: []string{"source_link", "source"}},
			{Name: "notify_email", Label: "Notify", Kind: KindEmail, Hidden: true,
				Aliases: []string{"recipient", "notify_email"}},
		},
	}
}
