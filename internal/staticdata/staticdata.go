// Package staticdata holds the compiled-in portfolio defaults the read path
// falls back to when a collection is empty or the database is unreachable.
// The content mirrors the legacy static site configuration.
package staticdata

import (
	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/internal/domain/education"
	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/skills"
	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/internal/domain/workexperience"
)

// Profile returns a fresh copy of the full static profile. Callers may
// mutate the result freely.
func Profile() *portfolio.Profile {
	return &portfolio.Profile{
		Name:     "Rahul Ladumor",
		Title:    "4x AWS Community Builder (Serverless) | Serverless Expert | LLM | AI ML",
		Tagline:  "30-70% Cost Reduction Specialist | DevOps & CI/CD Automation | Helping Enterprises Scale with Lambda & Kubernetes",
		Location: "Surat, Gujarat, India",
		Timezone: "GMT+5:30",
		Image:    "/assets/images/profile.avif",
		Email:    "rahuldladumor@gmail.com",
		Phone:    "+91-7567611653",
		Website:  "https://www.rahulladumor.in",
		Social: &personalinfo.Social{
			LinkedIn: "https://linkedin.com/in/rahulladumor",
			GitHub:   "https://github.com/Rahulladumor",
			Twitter:  "https://twitter.com/Rahul__ladumor",
		},
		Metrics: []personalinfo.Metric{
			{Value: "60%", Label: "Average Cost Reduction"},
			{Value: "200+", Label: "Engineers Mentored"},
			{Value: "8+", Label: "Years Experience"},
			{Value: "3+", Label: "AWS Certifications"},
		},
		Bio: "Hey, I'm Rahul, 4x AWS Community Builder, three-time certified, and the guy start-ups call when it just needs to WORK (securely) by launch day. 8 years building micro-service and event-driven stacks, trusted by Series A-C startups and Fortune 500 companies for mission-critical cloud transformations.",
		Experience: &personalinfo.Experience{
			Years:     "8+",
			Companies: "10+",
			Projects:  "50+",
		},
		ValuePropositions: []string{
			"Cost Optimization Expert: Proven record cutting costs by $100K+ annually through serverless architecture",
			"High Availability Specialist: Achieving 99.99% uptime across multiple production systems",
			"Automation Pioneer: Freeing 100+ engineering hours/month through intelligent automation",
			"Performance Engineer: Reducing deployment times by 70% and latency by 30%",
			"AI Integration Leader: Boosting development velocity by 60% with AI-powered DevOps",
		},
		Languages: []string{"English (Fluent)", "Hindi (Native)", "Gujarati (Native)"},
		Availability: &personalinfo.Availability{
			Status:     "open",
			Types:      []string{"full-time", "contract", "consulting"},
			Remote:     true,
			Relocation: true,
			PreferredRoles: []string{
				"Senior Cloud Engineer",
				"Solutions Architect",
				"Technical Lead",
				"DevOps Engineer",
			},
		},
		Achievements: []string{
			"8+ years architecting high-impact web and cloud-native AI-powered solutions",
			"4x AWS Community Builder (Serverless) - Multi-year recognition",
			"Architected zero-downtime migration processing 5M orders/mo <200ms",
			"Hardened fintech APIs reducing vulnerability MTTR from 14 days to 48 hrs",
			"Implemented IAM least-privilege across 200+ resources, passed audit first try",
		},

		Skills: &skills.Skills{
			Primary: []string{
				"AWS Lambda & Serverless Architecture",
				"Kubernetes & Container Orchestration",
				"Go (Programming Language)",
				"AI-Powered Cloud Systems Integration",
				"Technical Leadership & System Architecture",
			},
			Secondary: []string{
				"API Gateway & Microservices",
				"DynamoDB & Database Design",
				"CI/CD Pipeline Optimization",
				"Cloud Security & Compliance (PCI-DSS, ISO 27001)",
				"Event-Driven Architecture",
			},
			Tools: []string{
				"AWS (Lambda, EventBridge, ECS/EKS, Bedrock, CDK)",
				"Terraform & CloudFormation (Infrastructure as Code)",
				"Docker & Kubernetes",
				"Node.js, Go, Python, TypeScript",
				"ElasticSearch, DynamoDB, GraphQL",
			},
		},

		Certifications: []certification.Certification{
			{
				Name:         "AWS Certified Developer - Associate",
				Issuer:       "Amazon Web Services",
				Year:         "2023",
				CredentialID: "AWS-DVA-2023",
				Level:        "Associate",
			},
			{
				Name:         "AWS Certified Solutions Architect - Associate",
				Issuer:       "Amazon Web Services",
				Year:         "2023",
				CredentialID: "AWS-ASA-2023",
				Level:        "Associate",
			},
			{
				Name:         "AWS Community Builder (4x)",
				Issuer:       "Amazon Web Services",
				Year:         "2022-Present",
				CredentialID: "AWS-CB-2022",
				Level:        "Community",
			},
		},

		Education: []education.Education{
			{
				Institution: "Indian Institute of Technology, Roorkee",
				Degree:      "PG Certificate in Agentic AI, GenAI & Machine Learning",
				Duration:    "May 2025 - February 2026",
				GPA:         "In Progress",
				Location:    "Roorkee, India",
			},
			{
				Institution: "Veer Narmad South Gujarat University",
				Degree:      "Master of Science - MS, Information Technology",
				Duration:    "2018 - 2020",
				GPA:         "8.7",
				Location:    "Surat, Gujarat, India",
			},
			{
				Institution: "Veer Narmad South Gujarat University",
				Degree:      "Bachelor of Science - BS, Information Technology",
				Duration:    "2016 - 2018",
				GPA:         "7.4",
				Location:    "Surat, Gujarat, India",
			},
		},

		Services: []service.Service{
			{
				Name:        "AWS Cloud Architecture Review",
				Description: "Comprehensive assessment of your AWS infrastructure with cost optimization recommendations and security best practices implementation.",
				Duration:    "2-4 weeks",
				Deliverables: []string{
					"Architecture assessment report",
					"Cost optimization plan",
					"Security recommendations",
					"Migration roadmap",
				},
			},
			{
				Name:        "Serverless Application Development",
				Description: "End-to-end serverless application development using AWS Lambda, API Gateway, and DynamoDB with CI/CD pipeline setup.",
				Duration:    "4-12 weeks",
				Deliverables: []string{
					"Serverless application",
					"API documentation",
					"Monitoring setup",
					"Deployment pipeline",
				},
			},
			{
				Name:        "Technical Mentorship",
				Description: "One-on-one mentorship for developers and engineers looking to advance their cloud and DevOps skills.",
				Duration:    "Ongoing",
				Deliverables: []string{
					"Personalized learning plan",
					"Code reviews",
					"Career guidance",
					"Technical interviews prep",
				},
			},
		},

		WorkExperience: []workexperience.WorkExperience{
			{
				Company:     "ASTM International",
				Position:    "Senior AWS Solution Architect",
				Duration:    "Sep 2025 - Present",
				Location:    "Pennsylvania, United States",
				Description: "Leading AWS solution architecture for international standards organization, focusing on cloud-native transformations and enterprise-grade infrastructure.",
				Technologies: []string{
					"AWS", "Solutions Architecture", "Cloud Migration", "Enterprise Systems",
				},
				Achievements: []string{
					"Architecting enterprise-grade AWS solutions for global standards organization",
					"Leading cloud transformation initiatives for mission-critical systems",
				},
			},
			{
				Company:     "Freelance | Self-Employed",
				Position:    "Cloud Consultant",
				Duration:    "Mar 2025 - Present",
				Location:    "Surat, Gujarat, India",
				Description: "Independent consulting for contract engagements and freelance projects. Specialized in serverless architecture and cloud optimization.",
				Technologies: []string{
					"AWS Lambda", "Serverless Framework", "Node.js", "Infrastructure as Code",
				},
				Achievements: []string{
					"Cut client costs by $100K+ annually through serverless architecture",
					"Achieved 99.99% uptime across multiple client systems",
					"Freed 100+ engineering hours per month through automation",
				},
			},
		},

		Testimonials: []testimonial.Testimonial{
			{
				Name:        "Sarah Chen",
				Position:    "CTO",
				Company:     "TechFlow Solutions",
				Testimonial: "Rahul's expertise in serverless architecture helped us reduce our infrastructure costs by 60% while improving system reliability. His deep understanding of AWS services and cost optimization strategies is exceptional.",
				Image:       "/assets/images/testimonial-sarah.jpg",
				LinkedIn:    "https://linkedin.com/in/sarahchen-cto",
			},
			{
				Name:        "James Wilson",
				Position:    "Founder & CEO",
				Company:     "StartupHub Technologies",
				Testimonial: "Rahul played a crucial role in scaling our platform from startup to enterprise level. His serverless solutions helped us handle 10x traffic growth without proportional infrastructure costs.",
				Image:       "/assets/images/testimonial-james.jpg",
				LinkedIn:    "https://linkedin.com/in/james-wilson-ceo",
			},
		},

		CaseStudies: []casestudy.CaseStudy{
			{
				ID:        1,
				Title:     "E-commerce Platform Cost Optimization",
				Company:   "ShopEasy India",
				Industry:  "E-commerce",
				Challenge: "Rapidly growing AWS costs eating into profit margins",
				Image:     "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=600&h=400&fit=crop",
				Timeline:  "6 weeks",
				TeamSize:  "15 engineers",
				Metrics: map[string]string{
					"costReduction":     "52%",
					"monthlySaving":     "₹4.2L",
					"performanceGain":   "35%",
					"uptimeImprovement": "99.9%",
				},
				BeforeStats: map[string]string{
					"monthlySpend":    "₹8.1L",
					"avgResponseTime": "2.3s",
					"uptime":          "97.2%",
					"scalingIssues":   "Manual scaling",
				},
				AfterStats: map[string]string{
					"monthlySpend":    "₹3.9L",
					"avgResponseTime": "1.5s",
					"uptime":          "99.9%",
					"scalingIssues":   "Auto-scaling",
				},
				Solution: "Implemented comprehensive AWS cost optimization strategy including right-sizing EC2 instances, migrating to Spot instances for non-critical workloads, setting up auto-scaling groups, and optimizing RDS configurations.",
				Results: []string{
					"Reduced monthly AWS costs from ₹8.1L to ₹3.9L (52% reduction)",
					"Improved average response time by 35% through performance optimization",
					"Achieved 99.9% uptime with automated failover mechanisms",
				},
				Technologies: []string{"EC2", "RDS", "CloudWatch", "Auto Scaling", "Load Balancer"},
				ClientQuote:  "Rahul's optimization saved us over ₹50L annually while making our platform more reliable and faster. The ROI was immediate and substantial.",
			},
		},

		ProblemSection: map[string]any{
			"title":    "Are These AWS Challenges Costing You Money?",
			"subtitle": "Most startups and engineering teams face these critical cloud challenges that drain resources and limit growth potential.",
			"problems": []any{
				map[string]any{
					"icon":        "TrendingUp",
					"title":       "Skyrocketing AWS Bills",
					"description": "Your cloud costs are growing faster than your revenue, eating into profits and making scaling financially unsustainable.",
					"impact":      "₹2-10L+ monthly overspend",
				},
				map[string]any{
					"icon":        "Users",
					"title":       "Team Knowledge Gaps",
					"description": "Your engineers lack deep AWS expertise, causing security vulnerabilities and performance bottlenecks.",
					"impact":      "Delayed product launches",
				},
			},
			"cta": map[string]any{
				"title":      "Stop Losing Money on Inefficient AWS Usage",
				"buttonText": "Get Free Cost Analysis",
			},
		},
		SolutionSection: map[string]any{
			"title":    "Three Pillars of AWS Success",
			"subtitle": "Proven methodologies that have helped 100+ startups and engineers achieve measurable results in cloud optimization and career growth.",
			"solutions": []any{
				map[string]any{
					"icon":     "Search",
					"title":    "Architecture Review",
					"subtitle": "Comprehensive AWS Infrastructure Audit",
					"timeline": "2-3 weeks",
					"outcome":  "30-50% cost reduction typically achieved",
				},
				map[string]any{
					"icon":     "DollarSign",
					"title":    "Cost Optimization",
					"subtitle": "Immediate AWS Spend Reduction",
					"timeline": "1-2 weeks",
					"outcome":  "₹50K-5L+ monthly savings guaranteed",
				},
				map[string]any{
					"icon":     "Users",
					"title":    "Career Mentorship",
					"subtitle": "Accelerate Your AWS Career Growth",
					"timeline": "3-6 months",
					"outcome":  "40-60% salary increase on average",
				},
			},
		},
		CredentialsSection: map[string]any{
			"title":    "Proven AWS Expertise & Recognition",
			"subtitle": "7+ years of hands-on AWS experience backed by industry certifications, community recognition, and measurable client results.",
			"achievements": []any{
				map[string]any{
					"title":       "AWS Community Builder",
					"description": "Official recognition from AWS for community contributions",
					"icon":        "Users",
					"color":       "#FF9900",
				},
				map[string]any{
					"title":       "Speaking Engagements",
					"description": "Featured speaker at tech conferences and AWS meetups",
					"icon":        "Mic",
					"color":       "#1B365D",
				},
			},
		},
		ServicesSection: map[string]any{
			"title":    "Services Built Around Measurable Outcomes",
			"subtitle": "From one-off architecture reviews to long-term mentorship, every engagement is scoped around a concrete result.",
		},
		TestimonialsSection: map[string]any{
			"title":    "Real Results from Real Clients",
			"subtitle": "Don't just take my word for it. Here's what clients say about the measurable impact of our AWS optimization and mentorship programs.",
			"socialProof": map[string]any{
				"title": "Trusted by 100+ Professionals",
				"stats": []any{
					map[string]any{"value": "₹50Cr+", "label": "Total Cost Savings"},
					map[string]any{"value": "127", "label": "Engineers Mentored"},
					map[string]any{"value": "98%", "label": "Client Satisfaction"},
				},
			},
		},
		CaseStudiesSection: map[string]any{
			"title":    "Success Stories with Measurable Impact",
			"subtitle": "Deep-dive into real client transformations with detailed metrics, timelines, and quantified business outcomes.",
		},
		AboutSection: map[string]any{
			"title":    "The Engineer Behind the Results",
			"subtitle": "Cloud-native architecture, cost optimization, and mentorship, grounded in eight years of production experience.",
		},

		AdditionalInfo: &additionalinfo.AdditionalInfo{
			SpeakingEngagements: []additionalinfo.SpeakingEngagement{
				{
					Event:    "AWS User Group Surat",
					Topic:    "Serverless Cost Optimization Strategies",
					Date:     "2023",
					Audience: "150+ developers and architects",
				},
				{
					Event:    "DevOps India Conference",
					Topic:    "Building Resilient Cloud Infrastructure",
					Date:     "2023",
					Audience: "300+ DevOps professionals",
				},
			},
			Publications: []additionalinfo.Publication{
				{
					Title:    "AWS in 2025: Latest Updates and Best Practices for Developers",
					Platform: "Dev.to",
					Date:     "2025",
					URL:      "https://dev.to/rahulladumor/aws-in-2025-latest-updates-and-best-practices-for-developers-56ah",
					Views:    "5K+",
				},
				{
					Title:    "Mastering AWS Lambda Performance: Advanced Optimization Strategies for 2025",
					Platform: "Dev.to",
					Date:     "2025",
					URL:      "https://dev.to/rahulladumor/mastering-aws-lambda-performance-advanced-optimization-strategies-for-2025-3bfe",
					Views:    "8K+",
				},
			},
			CommunityInvolvement: []additionalinfo.CommunityInvolvement{
				{
					Organization: "AWS Community Builders",
					Role:         "Community Builder (Serverless)",
					Duration:     "2022 - Present",
					Activities: []string{
						"Technical content creation",
						"Community mentorship",
						"Conference speaking",
					},
				},
			},
			Awards: []additionalinfo.Award{
				{
					Title:       "Distinguished Alumni Recognition",
					Issuer:      "Veer Narmad South Gujarat University",
					Year:        "2023",
					Description: "Recognized at the 60th Anniversary Celebration for contributions to cloud engineering.",
				},
			},
			SubjectOptions: []string{
				"AWS Architecture Review",
				"Cost Optimization",
				"Career Mentorship",
				"Serverless Development",
				"Other",
			},
		},
	}
}

// StaticNotice is attached to profile responses served entirely from the
// static fallback after a storage failure.
const StaticNotice = "Serving static data due to database error"
