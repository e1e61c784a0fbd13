package mysql

const createCollectionsSQL = `
CREATE TABLE IF NOT EXISTS collections (
  name       VARCHAR(64) NOT NULL PRIMARY KEY,
  body       JSON        NOT NULL,
  updated_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)
`

const upsertCollectionSQL = `
INSERT INTO collections (name, body)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  body       = VALUES(body),
  updated_at = CURRENT_TIMESTAMP
`

const getCollectionSQL = `SELECT body FROM collections WHERE name = ?`
