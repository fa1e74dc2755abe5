package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/database"
	"github.com/authormark-api/internal/models"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article. A unique index on fingerprint makes a
// duplicate-content submission fail with a conflict, which is an expected
// outcome rather than an infrastructure error.
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, title, content, file_url, fingerprint, points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.FileURL,
		article.Fingerprint, article.Points, article.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperr.Wrap("article.create", apperr.KindConflict,
				"identical content was already published", err)
		}
		return apperr.StoreUnavailable("article.create", err)
	}
	return nil
}

// GetByID retrieves an article by ID; (nil, nil) on a miss
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return r.getOne(ctx, "article.get_by_id",
		selectArticle+" WHERE id = $1", id)
}

// GetByFingerprint retrieves an article by its content fingerprint;
// (nil, nil) on a miss
func (r *articleRepo) GetByFingerprint(ctx context.Context, fp string) (*models.Article, error) {
	return r.getOne(ctx, "article.get_by_fingerprint",
		selectArticle+" WHERE fingerprint = $1", fp)
}

const selectArticle = `
	SELECT id, title, content, file_url, fingerprint, certificate_id, points, created_at
	FROM articles
`

func (r *articleRepo) getOne(ctx context.Context, op, query string, arg interface{}) (*models.Article, error) {
	article, err := scanArticle(r.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.StoreUnavailable(op, err)
	}
	return article, nil
}

// List retrieves all articles, newest first
func (r *articleRepo) List(ctx context.Context) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, selectArticle+" ORDER BY created_at DESC")
	if err != nil {
		return nil, apperr.StoreUnavailable("article.list", err)
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, apperr.StoreUnavailable("article.list", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.StoreUnavailable("article.list", err)
	}
	return articles, nil
}

// SetCertificateID performs a conditional write: the identifier lands only
// while certificate_id is still NULL, so the first writer wins and every
// later caller sees false and re-reads the stored value.
func (r *articleRepo) SetCertificateID(ctx context.Context, id, certID string) (bool, error) {
	query := `
		UPDATE articles SET certificate_id = $2
		WHERE id = $1 AND certificate_id IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, certID)
	if err != nil {
		return false, apperr.StoreUnavailable("article.set_certificate_id", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperr.StoreUnavailable("article.set_certificate_id", err)
	}
	return n == 1, nil
}

// AddPoints folds delta into the running total in a single statement, so
// concurrent comment submissions never lose an increment. The total is
// rounded to two decimals and never drops below zero.
func (r *articleRepo) AddPoints(ctx context.Context, id string, delta float64) (float64, error) {
	query := `
		UPDATE articles
		SET points = GREATEST(ROUND(points + $2, 2), 0)
		WHERE id = $1
		RETURNING points
	`
	var total float64
	err := r.db.QueryRowContext(ctx, query, id, delta).Scan(&total)
	if err == sql.ErrNoRows {
		return 0, apperr.New("article.add_points", apperr.KindNotFound, "article not found")
	}
	if err != nil {
		return 0, apperr.StoreUnavailable("article.add_points", err)
	}
	return total, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	if err != nil {
		return 0, apperr.StoreUnavailable("article.count", err)
	}
	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var fileURL sql.NullString
	var certID sql.NullString

	err := row.Scan(
		&article.ID, &article.Title, &article.Content, &fileURL,
		&article.Fingerprint, &certID, &article.Points, &article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fileURL.Valid {
		// Older rows carry malformed references; resolve them once here so
		// everything above the store sees a usable URL.
		article.FileURL = NormalizeFileRef(fileURL.String)
	}
	if certID.Valid {
		article.CertificateID = &certID.String
	}
	return &article, nil
}
