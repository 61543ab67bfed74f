package domain

import "time"

// Seed carries the boot-time mock collections. The store is memory-only, so
// every start begins from this data.
type Seed struct {
	Customers     []Customer
	Bookings      []Booking
	Requests      []ServiceRequest
	Packages      []TravelPackage
	Payments      []Payment
	Notifications []Notification
	AdminUsers    []AdminUser
	CMS           CMSContent
	Settings      Settings
}

// DefaultSeed returns the demo dataset. Timestamps are taken relative to now
// so the dashboard day/week/month windows have content on a fresh boot.
func DefaultSeed(now time.Time) Seed {
	day := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	iso := func(t time.Time) string { return t.Format("2006-01-02") }

	return Seed{
		Customers: []Customer{
			{ID: 1001, Name: "Rahim Uddin", Email: "rahim@example.com", Phone: "+8801711000001",
				Address: "Dhanmondi, Dhaka", Status: CustomerActive, Tags: []string{"vip", "corporate"},
				TotalBookings: 2, TotalSpent: 215000, CreatedAt: day(120), UpdatedAt: day(3)},
			{ID: 1002, Name: "Sadia Akter", Email: "sadia@example.com", Phone: "+8801711000002",
				Address: "Uttara, Dhaka", Status: CustomerActive, Tags: []string{"family"},
				TotalBookings: 1, TotalSpent: 68000, CreatedAt: day(60), UpdatedAt: day(10)},
			{ID: 1003, Name: "Tanvir Hasan", Email: "tanvir@example.com", Phone: "+8801711000003",
				Address: "Agrabad, Chattogram", Status: CustomerInactive, Tags: nil,
				TotalBookings: 0, TotalSpent: 0, CreatedAt: day(200), UpdatedAt: day(200)},
		},
		Packages: []TravelPackage{
			{ID: 2001, Name: "Cox's Bazar Beach Escape", Destination: "Cox's Bazar", Days: 3,
				Price: 18500, OriginalPrice: 21000, Status: PackageActive, Featured: true,
				Bookings: 14, Summary: "Three days at the world's longest sea beach.",
				CreatedAt: day(180), UpdatedAt: day(5)},
			{ID: 2002, Name: "Kuala Lumpur City Break", Destination: "Malaysia", Days: 4,
				Price: 62000, Status: PackageActive, Featured: true, Bookings: 9,
				Summary: "Twin towers, street food and Batu Caves.", CreatedAt: day(150), UpdatedAt: day(8)},
			{ID: 2003, Name: "Umrah Economy Package", Destination: "Saudi Arabia", Days: 14,
				Price: 165000, Status: PackageActive, Featured: false, Bookings: 21,
				Summary: "Guided 14-day Umrah with Madinah ziyarah.", CreatedAt: day(140), UpdatedAt: day(2)},
			{ID: 2004, Name: "Dubai Desert & City", Destination: "UAE", Days: 5,
				Price: 98000, OriginalPrice: 110000, Status: PackageActive, Featured: false,
				Bookings: 6, Summary: "Desert safari, Burj Khalifa and marina cruise.",
				CreatedAt: day(90), UpdatedAt: day(30)},
			{ID: 2005, Name: "Sajek Valley Weekend", Destination: "Rangamati", Days: 2,
				Price: 9500, Status: PackageActive, Featured: false, Bookings: 11,
				Summary: "Cloud-kissed hills of the Kasalong range.", CreatedAt: day(70), UpdatedAt: day(12)},
			{ID: 2006, Name: "Maldives Honeymoon", Destination: "Maldives", Days: 5,
				Price: 240000, Status: PackageDraft, Featured: false, Bookings: 0,
				Summary: "Water villa stay, in drafting.", CreatedAt: day(20), UpdatedAt: day(20)},
		},
		Bookings: []Booking{
			{ID: 3001, Ref: "TD-7A31F0", Type: BookingTypeFlight, CustomerID: 1001,
				CustomerName: "Rahim Uddin", CustomerEmail: "rahim@example.com",
				Destination: "Dhaka - Dubai", TravelDate: iso(day(-20)), Amount: 115000,
				Status: BookingTicketed, PaymentStatus: PayStatusPaid,
				CreatedAt: day(25), UpdatedAt: day(18)},
			{ID: 3002, Ref: "TD-90C2B4", Type: BookingTypePackage, CustomerID: 1001, PackageID: 2003,
				CustomerName: "Rahim Uddin", CustomerEmail: "rahim@example.com",
				Destination: "Saudi Arabia", TravelDate: iso(day(-45)), Amount: 100000,
				Status: BookingConfirmed, PaymentStatus: PayStatusPartial,
				CreatedAt: day(12), UpdatedAt: day(6)},
			{ID: 3003, Ref: "TD-5E88D1", Type: BookingTypeHotel, CustomerID: 1002,
				CustomerName: "Sadia Akter", CustomerEmail: "sadia@example.com",
				Destination: "Cox's Bazar", TravelDate: iso(day(-10)), Amount: 68000,
				Status: BookingConfirmed, PaymentStatus: PayStatusPaid,
				CreatedAt: day(5), UpdatedAt: day(4)},
			{ID: 3004, Ref: "TD-11AA29", Type: BookingTypeFlight, CustomerID: 0,
				CustomerName: "Walk-in Guest", CustomerEmail: "guest@example.com",
				Destination: "Dhaka - Kathmandu", TravelDate: iso(day(-7)), Amount: 24000,
				Status: BookingPending, PaymentStatus: PayStatusUnpaid,
				CreatedAt: day(1), UpdatedAt: day(1)},
		},
		Requests: []ServiceRequest{
			{ID: 4001, Type: RequestTypeVisa, CustomerID: 1002, Name: "Sadia Akter",
				Email: "sadia@example.com", Phone: "+8801711000002", Country: "Canada",
				Details: "Visitor visa for a family of three.", Status: RequestInProgress,
				Priority: PriorityHigh, AssignedTo: "nazia", CreatedAt: day(9), UpdatedAt: day(2)},
			{ID: 4002, Type: RequestTypeStudyAbroad, CustomerID: 0, Name: "Mehedi Karim",
				Email: "mehedi@example.com", Phone: "+8801711000007", Country: "Australia",
				Details: "Masters admission, spring intake.", Status: RequestNew,
				Priority: PriorityMedium, CreatedAt: day(3), UpdatedAt: day(3)},
			{ID: 4003, Type: RequestTypeHajj, CustomerID: 1001, Name: "Rahim Uddin",
				Email: "rahim@example.com", Phone: "+8801711000001", Country: "Saudi Arabia",
				Details: "Pre-registration for next season, two pilgrims.", Status: RequestPendingDocs,
				Priority: PriorityMedium, AssignedTo: "farid", CreatedAt: day(30), UpdatedAt: day(8)},
			{ID: 4004, Type: RequestTypeCorporate, CustomerID: 0, Name: "Northstar Apparel Ltd.",
				Email: "travel@northstar.example", Phone: "+880255000000", Country: "Vietnam",
				Details: "Quarterly sourcing trip, six staff.", Status: RequestCancelled,
				Priority: PriorityLow, CreatedAt: day(50), UpdatedAt: day(40)},
		},
		Payments: []Payment{
			{ID: 5001, InvoiceNo: "INV-" + day(25).Format("2006") + "-0001", BookingID: 3001,
				CustomerName: "Rahim Uddin", Method: "bank", Amount: 115000, PaidAmount: 115000,
				Balance: 0, Status: PaymentCompleted, CreatedAt: day(25), UpdatedAt: day(18)},
			{ID: 5002, InvoiceNo: "INV-" + day(12).Format("2006") + "-0002", BookingID: 3002,
				CustomerName: "Rahim Uddin", Method: "card", Amount: 100000, PaidAmount: 40000,
				Balance: 60000, Status: PaymentPartial, CreatedAt: day(12), UpdatedAt: day(6)},
			{ID: 5003, InvoiceNo: "INV-" + day(5).Format("2006") + "-0003", BookingID: 3003,
				CustomerName: "Sadia Akter", Method: "bkash", Amount: 68000, PaidAmount: 68000,
				Balance: 0, Status: PaymentCompleted, CreatedAt: day(5), UpdatedAt: day(4)},
		},
		Notifications: []Notification{
			{ID: 6001, Type: NotifyBooking, Title: "New booking", Message: "Hotel booking TD-5E88D1 for Sadia Akter", Read: true, CreatedAt: day(5)},
			{ID: 6002, Type: NotifyPayment, Title: "Payment received", Message: "BDT 40,000 against INV 0002", Read: false, CreatedAt: day(6)},
			{ID: 6003, Type: NotifyLead, Title: "New inquiry", Message: "Study abroad inquiry from Mehedi Karim", Read: false, CreatedAt: day(3)},
			{ID: 6004, Type: NotifyAlert, Title: "Document reminder", Message: "Hajj pre-registration documents pending", Read: false, CreatedAt: day(2)},
		},
		AdminUsers: []AdminUser{
			BuiltinSuperAdmin(),
			{ID: 7001, Realname: "Nazia Rahman", Username: "nazia", Email: "nazia@tripdesk.local",
				Role: RoleManager, Permissions: []string{"bookings", "customers", "payments", "reports"},
				Status: UserActive, CreatedAt: day(300), UpdatedAt: day(300)},
			{ID: 7002, Realname: "Farid Ahmed", Username: "farid", Email: "farid@tripdesk.local",
				Role: RoleAgent, Permissions: []string{"bookings", "requests"},
				Status: UserActive, CreatedAt: day(250), UpdatedAt: day(250)},
			{ID: 7003, Realname: "Imran Chowdhury", Username: "imran", Email: "imran@tripdesk.local",
				Role: RoleAgent, Permissions: []string{"requests"},
				Status: UserInactive, CreatedAt: day(400), UpdatedAt: day(100)},
		},
		CMS: CMSContent{
			Hero: CMSHero{
				Title:    "Explore the world with Tripdesk",
				Subtitle: "Flights, holidays, visas and Hajj/Umrah under one roof.",
				CTAText:  "Plan my trip",
			},
			About: CMSAbout{
				Heading: "Two decades of taking Bangladesh abroad",
				Body:    "Tripdesk is a full-service travel agency in Dhaka serving leisure, corporate and religious travellers since 2004.",
			},
			Contact: CMSContact{
				Email:   "hello@tripdesk.example",
				Phone:   "+880255111222",
				Hotline: "16789",
				Address: "House 42, Road 11, Banani, Dhaka 1213",
			},
			Social: CMSSocial{
				Facebook:  "https://facebook.com/tripdeskbd",
				Instagram: "https://instagram.com/tripdeskbd",
				YouTube:   "https://youtube.com/@tripdeskbd",
				WhatsApp:  "+8801711000000",
			},
			FAQs: []CMSFaq{
				{Question: "Do you handle visa processing end to end?", Answer: "Yes, from appointment booking to document review and submission."},
				{Question: "Can I pay in installments?", Answer: "Package bookings accept a 40% deposit with the balance due 15 days before departure."},
			},
			Announcements: []CMSAnnouncement{
				{Text: "Early-bird Umrah packages for the winter season are open.", Active: true},
			},
		},
		Settings: Settings{
			AgencyName:    "Tripdesk Travels Ltd.",
			Tagline:       "Your journey, our desk",
			Currency:      "BDT",
			TaxRate:       0.05,
			InvoicePrefix: "INV",
			ContactEmail:  "hello@tripdesk.example",
			ContactPhone:  "+880255111222",
			Address:       "House 42, Road 11, Banani, Dhaka 1213",
			EmailAlerts:   true,
			SMSAlerts:     false,
		},
	}
}
