package seed

import "evently/internal/domain"

// UserFixture is a seeded account with a plain-text password.
type UserFixture struct {
	Name        string
	Email       string
	Password    string
	Role        string
	Avatar      string
	Phone       string
	DateOfBirth string
	Location    string
}

// RegistrationFixture is a seeded registration. EventIndex selects the event
// from the seeded event list, modulo its length.
type RegistrationFixture struct {
	EventIndex int
	Name       string
	Email      string
	Phone      string
	TicketType string
	Status     domain.RegistrationStatus
}

const pexels = "https://images.pexels.com/photos/"

// Events are the demo events. The attendee counter starts at zero and grows
// with the seeded registrations.
var Events = []domain.Event{
	{
		Title:        "Tech Innovation Summit",
		Description:  "Industry leaders and innovators discuss AI, blockchain and sustainable tech, with networking and hands-on workshops.",
		Date:         "2026-11-15",
		Time:         "09:00",
		Location:     "San Francisco Convention Center",
		MaxAttendees: 500,
		Price:        299,
		Image:        pexels + "2608517/pexels-photo-2608517.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category:     "Technology",
		Organizer:    "TechVision Inc.",
		Tags:         []string{"AI", "Innovation", "Networking", "Workshop"},
	},
	{
		Title:        "Digital Marketing Masterclass",
		Description:  "Practical digital marketing strategies and real-world case studies from industry professionals.",
		Date:         "2026-11-22",
		Time:         "14:00",
		Location:     "New York Business Hub",
		MaxAttendees: 200,
		Price:        199,
		Image:        pexels + "3184360/pexels-photo-3184360.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category:     "Marketing",
		Organizer:    "Marketing Pro Academy",
		Tags:         []string{"Digital Marketing", "SEO", "Social Media", "Analytics"},
	},
	{
		Title:        "Sustainable Business Conference",
		Description:  "Sustainable business practices for eco-friendly, profitable enterprises.",
		Date:         "2026-12-05",
		Time:         "10:00",
		Location:     "Chicago Green Center",
		MaxAttendees: 300,
		Price:        149,
		Image:        pexels + "3184396/pexels-photo-3184396.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category:     "Business",
		Organizer:    "EcoVision Corp",
		Tags:         []string{"Sustainability", "Business", "Green Tech", "Environment"},
	},
	{
		Title:        "Creative Design Workshop",
		Description:  "Hands-on workshop on graphic design, UI/UX and brand identity.",
		Date:         "2026-12-12",
		Time:         "13:00",
		Location:     "Los Angeles Creative Space",
		MaxAttendees: 150,
		Price:        179,
		Image:        pexels + "3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category:     "Design",
		Organizer:    "Design Academy",
		Tags:         []string{"Design", "Creative", "UI/UX", "Branding"},
	},
	{
		Title:        "Data Science Bootcamp",
		Description:  "Three days of machine learning, data analysis and visualization.",
		Date:         "2027-01-20",
		Time:         "09:00",
		Location:     "Boston Tech Campus",
		MaxAttendees: 100,
		Price:        399,
		Image:        pexels + "3184292/pexels-photo-3184292.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category:     "Technology",
		Organizer:    "DataScience Pro",
		Tags:         []string{"Data Science", "Machine Learning", "Analytics", "Python"},
	},
	{
		Title:        "Leadership Excellence Summit",
		Description:  "Leadership workshops and talks from renowned speakers.",
		Date:         "2027-02-03",
		Time:         "08:30",
		Location:     "Miami Convention Center",
		MaxAttendees: 400,
		Price:        249,
		Image:        pexels + "3184338/pexels-photo-3184338.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category:     "Business",
		Organizer:    "Leadership Institute",
		Tags:         []string{"Leadership", "Management", "Networking", "Business"},
	},
	{
		Title:        "Cybersecurity Workshop",
		Description:  "Essential security practices, with hands-on sessions run by security experts.",
		Date:         "2027-02-15",
		Time:         "10:30",
		Location:     "Seattle Tech Hub",
		MaxAttendees: 150,
		Price:        219,
		Image:        pexels + "60504/security-protection-anti-virus-software-60504.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category:     "Technology",
		Organizer:    "SecureNet Solutions",
		Tags:         []string{"Cybersecurity", "Technology", "Privacy", "Enterprise"},
	},
	{
		Title:        "AI & Machine Learning Conference",
		Description:  "Keynotes from AI researchers and hands-on ML workshops.",
		Date:         "2027-03-10",
		Time:         "09:30",
		Location:     "Denver Innovation Center",
		MaxAttendees: 350,
		Price:        329,
		Image:        pexels + "8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category:     "Technology",
		Organizer:    "AI Research Institute",
		Tags:         []string{"AI", "Machine Learning", "Research", "Innovation"},
	},
}

// Users are the demo accounts.
var Users = []UserFixture{
	{
		Name:        "Admin User",
		Email:       "admin@evently.com",
		Password:    "admin123",
		Role:        domain.RoleAdmin,
		Avatar:      pexels + "614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150",
		Phone:       "+1-555-0001",
		DateOfBirth: "1990-01-01",
		Location:    "San Francisco, CA",
	},
	{
		Name:        "Regular User",
		Email:       "user@evently.com",
		Password:    "user123",
		Role:        domain.RoleUser,
		Avatar:      pexels + "733872/pexels-photo-733872.jpeg?auto=compress&cs=tinysrgb&w=150",
		Phone:       "+1-555-0002",
		DateOfBirth: "1995-05-15",
		Location:    "New York, NY",
	},
}

// Registrations are the demo registrations.
var Registrations = []RegistrationFixture{
	{EventIndex: 0, Name: "John Smith", Email: "john.smith@example.com", Phone: "+1-555-0123", TicketType: "Standard", Status: domain.StatusConfirmed},
	{EventIndex: 1, Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Phone: "+1-555-0124", TicketType: "VIP", Status: domain.StatusConfirmed},
	{EventIndex: 2, Name: "Michael Brown", Email: "michael.brown@example.com", Phone: "+1-555-0125", TicketType: "Standard", Status: domain.StatusPending},
	{EventIndex: 3, Name: "Emily Davis", Email: "emily.davis@example.com", Phone: "+1-555-0126", TicketType: "Standard", Status: domain.StatusConfirmed},
	{EventIndex: 4, Name: "David Wilson", Email: "david.wilson@example.com", Phone: "+1-555-0127", TicketType: "Standard", Status: domain.StatusConfirmed},
}
