package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a small believable demo catalogue: two main sites, one
// supplier microsite, one opportunity microsite, plus bookings, traffic,
// products, pages, collections and a keyword pool. Intended for empty
// development databases; every insert is ON CONFLICT DO NOTHING.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	type seedSite struct {
		id           int64
		name, domain string
		kind         string
		destinations []string
		categories   []string
		searchTerms  []string
		cities       []string
		ownedCats    []string
		seeds        []string
		products     int
	}
	sites := []seedSite{
		{
			id: 1, name: "CityDays", domain: "citydays.example.com", kind: "main",
			destinations: []string{"london", "manchester", "edinburgh", "york"},
			categories:   []string{"tour", "escape room", "afternoon tea"},
			searchTerms:  []string{"days out", "city breaks"},
			products:     180,
		},
		{
			id: 2, name: "Riviera Trips", domain: "rivieratrips.example.com", kind: "main",
			destinations: []string{"rome", "florence", "venice", "amalfi"},
			categories:   []string{"tour", "tasting", "cruise"},
			searchTerms:  []string{"italy holidays"},
			products:     140,
		},
		{
			id: 3, name: "Thames Cruises Direct", domain: "thamescruises.example.com", kind: "supplier_microsite",
			cities:    []string{"london", "windsor"},
			ownedCats: []string{"cruise", "afternoon tea"},
			products:  24,
		},
		{
			id: 4, name: "Ghost Walks UK", domain: "ghostwalks.example.com", kind: "opportunity_microsite",
			seeds:    []string{"ghost walk", "ghost tour london", "haunted tour"},
			products: 60,
		},
	}
	for _, s := range sites {
		_, err := db.Exec(ctx, `INSERT INTO sites
    (id, name, domain, kind, active, destinations, categories, search_terms,
     supplier_cities, supplier_categories, seed_keywords, product_count)
VALUES ($1,$2,$3,$4,TRUE,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
			s.id, s.name, s.domain, s.kind, s.destinations, s.categories,
			s.searchTerms, s.cities, s.ownedCats, s.seeds, s.products)
		if err != nil {
			return err
		}
	}

	// bookings and traffic for the two main sites and sessions for the
	// microsites
	for siteID := int64(1); siteID <= 2; siteID++ {
		for i := 0; i < 40; i++ {
			amount := 60 + r.Float64()*180
			commission := 15 + r.Float64()*10
			bookedAt := time.Now().AddDate(0, 0, -r.Intn(85))
			_, err := db.Exec(ctx, `INSERT INTO bookings
    (site_id, status, amount, commission_pct, booked_at)
VALUES ($1,'confirmed',$2,$3,$4) ON CONFLICT DO NOTHING`,
				siteID, amount, commission, bookedAt)
			if err != nil {
				return err
			}
		}
	}
	for _, s := range sites {
		for d := 0; d < 60; d++ {
			day := time.Now().AddDate(0, 0, -d).Format("2006-01-02")
			sessions := 30 + r.Intn(200)
			bookings := r.Intn(sessions / 20)
			_, err := db.Exec(ctx, `INSERT INTO traffic_snapshots
    (site_id, day, sessions, bookings)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, s.id, day, sessions, bookings)
			if err != nil {
				return err
			}
		}
	}

	// products per site so inventory checks have something to count
	destinationsByID := map[int64][]string{
		1: {"london", "manchester", "edinburgh", "york"},
		2: {"rome", "florence", "venice", "amalfi"},
		3: {"london", "windsor"},
		4: {"london", "edinburgh", "york"},
	}
	categoriesByID := map[int64][]string{
		1: {"tour", "escape room", "afternoon tea"},
		2: {"tour", "tasting", "cruise"},
		3: {"cruise", "afternoon tea"},
		4: {"ghost walk"},
	}
	for _, s := range sites {
		for i := 0; i < s.products; i++ {
			dests := destinationsByID[s.id]
			cats := categoriesByID[s.id]
			dest := dests[r.Intn(len(dests))]
			cat := cats[r.Intn(len(cats))]
			title := fmt.Sprintf("%s %s experience %d", dest, cat, i+1)
			price := 20 + r.Float64()*120
			_, err := db.Exec(ctx, `INSERT INTO products
    (site_id, title, price, destination, category, active)
VALUES ($1,$2,$3,$4,$5,TRUE) ON CONFLICT DO NOTHING`,
				s.id, title, price, dest, cat)
			if err != nil {
				return err
			}
		}
	}

	// routing pages and collections for the main sites
	pages := []struct {
		siteID   int64
		typ      string
		title    string
		path     string
		location string
		category string
	}{
		{1, "DESTINATION", "Things to do in London", "/destinations/london", "london", ""},
		{1, "DESTINATION", "Things to do in Manchester", "/destinations/manchester", "manchester", ""},
		{1, "CATEGORY", "Escape rooms across the UK", "/categories/escape-rooms", "", "escape room"},
		{1, "BLOG", "The best afternoon tea ideas for a rainy day", "/blog/afternoon-tea-ideas", "", ""},
		{2, "DESTINATION", "Things to do in Rome", "/destinations/rome", "rome", ""},
		{2, "CATEGORY", "Wine tastings in Italy", "/categories/tastings", "", "tasting"},
	}
	for _, p := range pages {
		_, err := db.Exec(ctx, `INSERT INTO pages
    (site_id, type, title, path, location, category, published)
VALUES ($1,$2,$3,$4,$5,$6,TRUE) ON CONFLICT DO NOTHING`,
			p.siteID, p.typ, p.title, p.path, p.location, p.category)
		if err != nil {
			return err
		}
	}
	_, err := db.Exec(ctx, `INSERT INTO collections
    (site_id, name, path, product_count, active, active_months)
VALUES (1, 'Christmas experiences for families', '/collections/christmas-family', 18, TRUE, '{11,12}'),
       (1, 'Date night ideas', '/collections/date-night', 25, TRUE, '{}')
ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	// keyword pool
	keywords := []struct {
		text     string
		volume   int
		cpc      float64
		intent   string
		location string
	}{
		{"london escape room", 12000, 1.40, "TRANSACTIONAL", "london"},
		{"things to do in rome", 30000, 0.90, "COMMERCIAL", ""},
		{"thames dinner cruise london", 6000, 1.80, "TRANSACTIONAL", "london"},
		{"ghost tour london", 4000, 0.70, "COMMERCIAL", "london"},
		{"free walking tour london", 9000, 0.30, "COMMERCIAL", "london"},
		{"afternoon tea manchester", 7000, 1.10, "TRANSACTIONAL", "manchester"},
		{"best time to visit venice", 15000, 0.40, "INFORMATIONAL", ""},
		{"citydays", 2000, 0.20, "NAVIGATIONAL", ""},
		{"wine tasting florence", 5000, 1.30, "TRANSACTIONAL", "florence"},
	}
	for _, kw := range keywords {
		_, err := db.Exec(ctx, `INSERT INTO candidate_keywords
    (text, monthly_volume, estimated_cpc, intent, location, status)
VALUES ($1,$2,$3,$4,$5,'candidate') ON CONFLICT DO NOTHING`,
			kw.text, kw.volume, kw.cpc, kw.intent, kw.location)
		if err != nil {
			return err
		}
	}
	return nil
}
