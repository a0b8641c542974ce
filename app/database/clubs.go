package database

import (
	"database/sql"

	"courtside/app/models"
)

func GetClubByOwner(db *sql.DB, ownerID string) (*models.Club, error) {
	club := &models.Club{}
	query := `SELECT owner_id, name, logo_url, created_at FROM clubs WHERE owner_id = $1`

	err := db.QueryRow(query, ownerID).Scan(
		&club.OwnerID, &club.Name, &club.LogoURL, &club.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return club, nil
}

func CreateClub(db *sql.DB, club *models.Club) error {
	query := `INSERT INTO clubs (owner_id, name, logo_url)
			  VALUES ($1, $2, $3)
			  RETURNING created_at`

	return db.QueryRow(query, club.OwnerID, club.Name, club.LogoURL).Scan(&club.CreatedAt)
}

func UpdateClubName(db *sql.DB, ownerID, name string) error {
	query := `UPDATE clubs SET name = $1 WHERE owner_id = $2`
	result, err := db.Exec(query, name, ownerID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListClubOwners returns the owner ids of every registered club. Used
// by the background sweep that closes out elapsed matches.
func ListClubOwners(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT owner_id FROM clubs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		owners = append(owners, id)
	}
	return owners, rows.Err()
}
