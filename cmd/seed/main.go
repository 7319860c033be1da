package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"estateportal/internal/database"
	"estateportal/internal/domain"
	"estateportal/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("estateportal.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM channel_partners")
	db.Exec("DELETE FROM users")

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	ctx := context.Background()

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@estateportal.in",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Portal Admin",
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("admin create failed:", err)
	}
	log.Println("Admin created: admin@estateportal.in / admin123")

	// Channel partners in different lifecycle states
	partnerSeeds := []struct {
		first, last, email, city, state, company string
		verified                                 bool
		status                                   domain.PartnerStatus
	}{
		{"Rahul", "Sharma", "rahul@brokers.in", "Mumbai", "Maharashtra", "Sharma Realty", true, domain.StatusApproved},
		{"Priya", "Patel", "priya@homes.in", "Ahmedabad", "Gujarat", "", true, domain.StatusPending},
		{"Arjun", "Reddy", "arjun@estates.in", "Hyderabad", "Telangana", "Reddy Estates", false, domain.StatusPending},
	}

	for i, seed := range partnerSeeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("partner123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        seed.email,
			PasswordHash: string(hash),
			Role:         domain.RoleChannelPartner,
			Name:         seed.first + " " + seed.last,
		}
		p := domain.ChannelPartner{
			FirstName:     seed.first,
			LastName:      seed.last,
			CompanyName:   seed.company,
			Phone:         fmt.Sprintf("+91 98765 432%02d", i+10),
			City:          seed.city,
			State:         seed.state,
			EmailVerified: seed.verified,
			Status:        seed.status,
		}
		if seed.status == domain.StatusApproved {
			now := time.Now()
			p.ApprovedAt = &now
		}
		if err := userRepo.CreateWithPartner(ctx, &u, &p); err != nil {
			log.Fatal("partner create failed:", err)
		}
		log.Printf("Partner created: %s (%s, %s)", seed.email, seed.status, seed.city)
	}

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")

	properties := []domain.Property{
		{Title: "Sunrise Towers 2BHK", BuilderName: "Lodha Group", Category: "apartment", City: "Mumbai", State: "Maharashtra", Price: 9500000, Bedrooms: 2, AreaSqft: 850, Published: true, CreatedBy: admin.ID},
		{Title: "Green Acres Villa", BuilderName: "Prestige", Category: "villa", City: "Bengaluru", State: "Karnataka", Price: 24000000, Bedrooms: 4, AreaSqft: 2600, Published: true, CreatedBy: admin.ID},
		{Title: "Lakeview Plots Phase 1", BuilderName: "DLF", Category: "plot", City: "Hyderabad", State: "Telangana", Price: 4200000, AreaSqft: 1800, Published: false, CreatedBy: admin.ID},
	}
	for i := range properties {
		if err := propertyRepo.Create(ctx, &properties[i]); err != nil {
			log.Fatal("property create failed:", err)
		}
	}

	log.Println("Seed complete.")
}
