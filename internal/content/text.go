// Package content holds the résumé copy rendered on the portfolio page.
package content

// Entry is one position or qualification on the timeline.
type Entry struct {
	Title        string
	Organization string
	Location     string
	StartDate    string
	EndDate      string
	LogoPath     string
	BulletPoints []string
}

// Project is a highlighted piece of work.
type Project struct {
	Name    string
	Summary string
	Impact  string
}

// Contact lists the ways to reach the owner.
type Contact struct {
	Email    string
	Phone    string
	Location string
	LinkedIn string
	Notion   string
}

const (
	Name    = "Lakhan Singh"
	Tagline = "Product Manager · AI & Digital Solutions"
)

var (
	AboutMe = `Product Manager with a software engineering background and 4+ years of experience
	driving AI-powered and SaaS-based product innovation across HR, Ecommerce and Conversational AI
	platforms. I lead cross-functional teams to design, prioritize and deliver intelligent chatbots,
	virtual assistants and digital customer journeys, and I care about products that solve real user
	problems while moving business metrics.`

	Interests = []string{
		"Corporate leather ball cricket",
		"Travelling and exploring new cultures",
		"Car driving and road trips",
	}

	Skills = map[string][]string{
		"Product Ownership":          {"Backlog prioritization", "Sprint planning", "Requirement grooming", "Product roadmaps"},
		"Conversational AI":          {"Chatbots", "Virtual Assistants", "NLP", "Dialogflow", "Rasa"},
		"Customer Experience":        {"Journey Design", "Voice of Customer", "CX Analytics", "Personalization"},
		"Agile Delivery":             {"Cross-Functional Collaboration", "Scrum Team Coordination", "UAT", "Continuous Improvement"},
		"Analytics & Insights":       {"Google Analytics GA4", "Mixpanel", "Power BI", "A/B Testing", "Adoption Metrics"},
		"Leadership & Communication": {"Stakeholder Management", "Risk Assessment", "Compliance", "Client Demos"},
	}

	Experience = []Entry{
		{
			Title:        "Product Manager/Owner – AI & Digital Solutions",
			Organization: "FlyTech Solution",
			Location:     "Noida, India",
			StartDate:    "Feb 2022",
			EndDate:      "Present",
			LogoPath:     "images/flytech-logo.png",
			BulletPoints: []string{
				"Owned backlog and delivery roadmap for AI-driven platforms across HRMS and E-commerce",
				"Delivered an AI-powered Employee Self-Service Chatbot that automated 45% of query load and improved response time by 50%",
				"Led the design of an AI-based Personal Shopping Assistant, improving engagement by 15%",
				"Achieved >95% on-time sprint completion with Agile and Scrum",
				"Increased customer satisfaction scores by 20% through optimized conversational experiences",
			},
		},
		{
			Title:        "Business Head",
			Organization: "RTL Technologies",
			Location:     "Noida, India",
			StartDate:    "Jan 2017",
			EndDate:      "Jan 2022",
			LogoPath:     "images/rtl-logo.png",
			BulletPoints: []string{
				"Oversaw client delivery and recruitment operations for US-based client projects",
				"Managed a 50+ member cross-functional team aligned with client goals and SLAs",
				"Boosted recruiter productivity by 20% and compliance tracking by 35%",
				"Drove 40% client growth and strengthened long-term US partnerships",
			},
		},
		{
			Title:        "Project Head – Electronics Product Development",
			Organization: "Three X Electronics",
			Location:     "New Delhi, India",
			StartDate:    "Jul 2014",
			EndDate:      "Dec 2016",
			LogoPath:     "images/threex-logo.png",
			BulletPoints: []string{
				"Headed development of starter relays, CDI units, ignition coils and assemblies, expanding the portfolio by 20%",
				"Enforced quality protocols, achieving 95%+ first pass yield",
				"Negotiated supplier contracts, lowering material costs by 10–15% and improving lead times by 25%",
			},
		},
	}

	Education = []Entry{
		{
			Title:        "Bachelor of Engineering (B.E.), Electronics & Communication",
			Organization: "Dr. A.P.J. Abdul Kalam Technical University",
			EndDate:      "2014",
			LogoPath:     "images/aktu-logo.png",
			BulletPoints: []string{
				"Technical foundation that carried through software engineering into product management",
			},
		},
	}

	Certifications = []Entry{
		{Title: "Generative AI Overview for Project Managers", Organization: "Project Management Institute (PMI)", EndDate: "Oct 2025"},
		{Title: "Advanced Business Analysis (35 IIBA PDUs)", Organization: "Udemy", EndDate: "Sep 2025"},
		{Title: "Electronic Arts Product Management Job Simulation", Organization: "Forage", EndDate: "Sep 2025"},
		{Title: "J.P. Morgan Quantitative Research Job Simulation", Organization: "Forage", EndDate: "Sep 2025"},
		{Title: "Fintech Product Management Bootcamp 2025", Organization: "Udemy", EndDate: "Sep 2025"},
		{Title: "Super Certified", Organization: "Pendo.io", EndDate: "Sep 2025"},
		{Title: "AI Agents for Product Leaders", Organization: "LinkedIn Learning", EndDate: "Aug 2025"},
		{Title: "AI for Product Management", Organization: "Pendo.io", EndDate: "Aug 2025"},
		{Title: "Technical Product Management", Organization: "LinkedIn Learning", EndDate: "Aug 2025"},
	}

	Projects = []Project{
		{
			Name:    "Hospital-Focused HRMS Platform",
			Summary: "HRMS for healthcare institutions with vendor management, payroll, attendance tracking, leave management and smart staff scheduling.",
			Impact:  "Streamlined operations for 5+ healthcare facilities and reduced scheduling conflicts by 60%+.",
		},
		{
			Name:    "AI-Powered Employee Self-Service Chatbot",
			Summary: "Intelligent HR assistant that automates routine HR queries for 24/7 employee self-service.",
			Impact:  "40%+ reduction in HR workload and 85%+ query resolution without human intervention.",
		},
		{
			Name:    "AI-Powered Personal Shopping Assistant",
			Summary: "Luxury e-commerce conversational commerce solution for product discovery, gifting and styling.",
			Impact:  "Boosted engagement and premium basket conversions by ~15%.",
		},
	}

	ContactInfo = Contact{
		Email:    "lakhan.rajputaipm@gmail.com",
		Phone:    "+91 9690902424",
		Location: "Noida, India",
		LinkedIn: "https://linkedin.com/in/lakhan-rajput-0119/",
		Notion:   "https://beautiful-blossom-08b.notion.site/Lakhan-Singh-Product-Manager-Portfolio",
	}
)
