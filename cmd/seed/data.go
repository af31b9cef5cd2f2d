package main

import (
	"github.com/volatiletech/null/v8"

	"club-site.backend/internal/domain/entities"
)

func seedExecutives() []*entities.Executive {
	return []*entities.Executive{
		{
			Name:        "Sarah Johnson",
			Role:        "President",
			Bio:         "Senior Computer Science major passionate about building a strong beach volleyball community at GT. Loves competitive play and organizing team events.",
			PhotoURL:    "/images/execs/president.jpg",
			Email:       null.StringFrom("sarah.johnson@gatech.edu"),
			LinkedInURL: null.StringFrom("https://linkedin.com/in/sarah-johnson-gt"),
			Visible:     true,
			Order:       1,
		},
		{
			Name:        "Michael Chen",
			Role:        "Vice President",
			Bio:         "Mechanical Engineering junior with 5+ years of volleyball experience. Focuses on player development and tournament coordination.",
			PhotoURL:    "/images/execs/vice-president.jpg",
			Email:       null.StringFrom("michael.chen@gatech.edu"),
			LinkedInURL: null.StringFrom("https://linkedin.com/in/michael-chen-gt"),
			Visible:     true,
			Order:       2,
		},
		{
			Name:     "Emily Rodriguez",
			Role:     "Treasurer",
			Bio:      "Business Administration major handling all financial aspects of the club. Ensures sustainable funding for equipment and tournaments.",
			PhotoURL: "/images/execs/treasurer.jpg",
			Email:    null.StringFrom("emily.rodriguez@gatech.edu"),
			Visible:  true,
			Order:    3,
		},
		{
			Name:        "David Kim",
			Role:        "Events Coordinator",
			Bio:         "Industrial Engineering senior organizing practice schedules, tournaments, and social events. Creates opportunities for players of all skill levels.",
			PhotoURL:    "/images/execs/events.jpg",
			Email:       null.StringFrom("david.kim@gatech.edu"),
			LinkedInURL: null.StringFrom("https://linkedin.com/in/david-kim-gt"),
			Visible:     true,
			Order:       4,
		},
		{
			Name:     "Jessica Williams",
			Role:     "Communications Director",
			Bio:      "Public Policy major managing social media, newsletters, and member communications. Keeps everyone informed about club activities.",
			PhotoURL: "/images/execs/communications.jpg",
			Email:    null.StringFrom("jessica.williams@gatech.edu"),
			Visible:  true,
			Order:    5,
		},
		{
			Name:     "Alex Thompson",
			Role:     "Equipment Manager",
			Bio:      "Civil Engineering junior responsible for maintaining nets, balls, and training equipment. Ensures safe and quality practice conditions.",
			PhotoURL: "/images/execs/equipment.jpg",
			Email:    null.StringFrom("alex.thompson@gatech.edu"),
			Visible:  true,
			Order:    6,
		},
	}
}

func seedSponsors() []*entities.Sponsor {
	return []*entities.Sponsor{
		{
			Name:       "Your Company Here",
			LogoURL:    "/images/sponsors/placeholder-logo.png",
			WebsiteURL: "https://example.com",
			Blurb:      "Interested in sponsoring the Georgia Tech Beach Volleyball Club? Contact us to learn about sponsorship opportunities and benefits.",
			Active:     true,
		},
		{
			Name:       "Tech Sports Gear",
			LogoURL:    "/images/sponsors/tech-sports.png",
			WebsiteURL: "https://techsportsgear.com",
			Blurb:      "Premium volleyball equipment and apparel for competitive players. Quality gear for every level of play.",
		},
		{
			Name:       "Campus Fitness",
			LogoURL:    "/images/sponsors/campus-fitness.png",
			WebsiteURL: "https://campusfitness.com",
			Blurb:      "Supporting student athletes with fitness programs and wellness initiatives. Building stronger communities through sports.",
		},
	}
}

func seedInterestSubmissions() []*entities.InterestSubmission {
	return []*entities.InterestSubmission{
		{
			Name:            "Rachel Green",
			Email:           "rachel.green@gatech.edu",
			Phone:           null.StringFrom("+14045550123"),
			Affiliation:     entities.AffiliationGTStudent,
			ExperienceLevel: entities.ExperienceIntermediate,
			Notes:           null.StringFrom("Played indoor volleyball in high school, excited to try beach volleyball! Looking for a fun way to stay active and meet new people."),
		},
		{
			Name:            "Tom Anderson",
			Email:           "tom.anderson@gatech.edu",
			Affiliation:     entities.AffiliationGTStudent,
			ExperienceLevel: entities.ExperienceBeginner,
			Notes:           null.StringFrom("Complete beginner but very interested in learning beach volleyball. Hoping to join practices and improve my skills."),
		},
		{
			Name:            "Lisa Park",
			Email:           "lisa.park@gatech.edu",
			Phone:           null.StringFrom("+14045550456"),
			Affiliation:     entities.AffiliationGTStudent,
			ExperienceLevel: entities.ExperienceAdvanced,
			Notes:           null.StringFrom("Competitive beach volleyball player looking to join the club team. Interested in tournament opportunities and advanced training."),
		},
		{
			Name:            "Mark Davis",
			Email:           "mark.davis@gmail.com",
			Phone:           null.StringFrom("+14045550789"),
			Affiliation:     entities.AffiliationOther,
			ExperienceLevel: entities.ExperienceIntermediate,
			Notes:           null.StringFrom("GT alum interested in supporting the club. Can help with coaching and occasional practices."),
		},
	}
}

func seedSponsorInquiries() []*entities.SponsorInquiry {
	return []*entities.SponsorInquiry{
		{
			Name:    "Jennifer Smith",
			Email:   "jennifer.smith@company.com",
			Company: null.StringFrom("Local Sports Store"),
			Message: "Interested in sponsoring your beach volleyball club. We can provide equipment and apparel in exchange for brand visibility at events.",
		},
		{
			Name:    "Robert Wilson",
			Email:   "robert.wilson@startup.com",
			Company: null.StringFrom("Tech Startup"),
			Message: "Looking to sponsor student organizations. Our company focuses on sports technology and would love to support your club.",
		},
	}
}
