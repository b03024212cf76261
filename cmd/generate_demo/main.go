// Command generate_demo creates a demo database with sample users, books,
// reviews, comments and likes.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/elllibres/elllibres/internal/database"
	"github.com/elllibres/elllibres/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// All demo accounts share this password.
const demoPassword = "demo-password"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	users := createUsers(db)
	books := createBooks(db, users)
	reviews := createReviews(db, users, books)
	createComments(db, users, reviews)
	createLikes(db, users, books)

	log.Println("Demo database generated successfully!")
}

func createUsers(db *database.Database) []entities.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	users := []entities.User{
		{Name: "Pol", Surname: "Romeu", Username: "polromeu", Age: 24, Email: "pol@example.com", Admin: true},
		{Name: "Laia", Surname: "Ferrer", Username: "laiaferrer", Age: 31, Email: "laia@example.com"},
		{Name: "Marc", Surname: "Vila", Username: "marcvila", Age: 27, Email: "marc@example.com"},
	}

	for i := range users {
		users[i].Password = string(hash)
		if err := db.DB.Create(&users[i]).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", users[i].Username, err)
		}
		log.Printf("Created user: %s", users[i].Username)
	}
	return users
}

func createBooks(db *database.Database, users []entities.User) []entities.Book {
	books := []entities.Book{
		{UserID: users[0].ID, Title: "La plaça del Diamant", Author: "Mercè Rodoreda", Genre: "Fiction", Description: "Barcelona through the eyes of Natàlia, before and after the war.", BookImg: "placa-diamant.jpg"},
		{UserID: users[0].ID, Title: "Tirant lo Blanc", Author: "Joanot Martorell", Genre: "Chivalric romance", Description: "The knight Tirant's campaigns across the Mediterranean.", BookImg: "tirant.jpg"},
		{UserID: users[1].ID, Title: "Don Quijote", Author: "Miguel de Cervantes", Genre: "Classic", Description: "A gentleman of La Mancha takes up knight-errantry.", BookImg: "quijote.jpg"},
		{UserID: users[2].ID, Title: "Solitud", Author: "Víctor Català", Genre: "Fiction", Description: "Mila's isolation in a Pyrenean hermitage.", BookImg: "solitud.jpg"},
	}

	for i := range books {
		if err := db.DB.Create(&books[i]).Error; err != nil {
			log.Fatalf("Failed to create book %s: %v", books[i].Title, err)
		}
		log.Printf("Created book: %s by %s", books[i].Title, books[i].Author)
	}
	return books
}

func createReviews(db *database.Database, users []entities.User, books []entities.Book) []entities.Review {
	reviews := []entities.Review{
		{UserID: users[1].ID, BookID: books[0].ID, Title: "Unforgettable", Text: "Natàlia's voice stays with you long after the last page.", Valoration: 5},
		{UserID: users[2].ID, BookID: books[0].ID, Title: "A classic for a reason", Text: "Dense in places but worth every chapter.", Valoration: 4},
		{UserID: users[0].ID, BookID: books[2].ID, Title: "Still funny", Text: "Four centuries on and the windmills still land.", Valoration: 5},
		{UserID: users[1].ID, BookID: books[3].ID, Title: "Bleak and beautiful", Text: "The mountain is as much a character as Mila.", Valoration: 4},
	}

	for i := range reviews {
		if err := db.DB.Create(&reviews[i]).Error; err != nil {
			log.Fatalf("Failed to create review %s: %v", reviews[i].Title, err)
		}
	}
	log.Printf("Created %d reviews", len(reviews))
	return reviews
}

func createComments(db *database.Database, users []entities.User, reviews []entities.Review) {
	comments := []entities.Comment{
		{UserID: users[0].ID, ReviewID: reviews[0].ID, Comment: "Completely agree, the pigeons scene is devastating."},
		{UserID: users[2].ID, ReviewID: reviews[0].ID, Comment: "Reading it now on your recommendation."},
		{UserID: users[1].ID, ReviewID: reviews[2].ID, Comment: "The second part is even better than the first."},
	}

	for i := range comments {
		if err := db.DB.Create(&comments[i]).Error; err != nil {
			log.Fatalf("Failed to create comment: %v", err)
		}
	}
	log.Printf("Created %d comments", len(comments))
}

func createLikes(db *database.Database, users []entities.User, books []entities.Book) {
	likes := []entities.Like{
		{UserID: users[1].ID, BookID: books[0].ID},
		{UserID: users[2].ID, BookID: books[0].ID},
		{UserID: users[0].ID, BookID: books[2].ID},
		{UserID: users[2].ID, BookID: books[3].ID},
	}

	for i := range likes {
		if err := db.DB.Create(&likes[i]).Error; err != nil {
			log.Fatalf("Failed to create like: %v", err)
		}
	}
	log.Printf("Created %d likes", len(likes))
}
