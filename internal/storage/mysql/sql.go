package mysql

const upsertServiceSQL = `
INSERT INTO services
  (id, name, description, price, duration, vendor, location, category, cuisine, menu)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  description = VALUES(description),
  price       = VALUES(price),
  duration    = VALUES(duration),
  vendor      = VALUES(vendor),
  location    = VALUES(location),
  category    = VALUES(category),
  cuisine     = VALUES(cuisine),
  menu        = VALUES(menu),
  updated_at  = CURRENT_TIMESTAMP
`

// Catalog order is insertion order; formatters and the booking detector
// both rely on a stable listing.
const listServicesSQL = `
SELECT
  id,
  name,
  description,
  price,
  duration,
  vendor,
  location,
  category,
  cuisine,
  menu
FROM services
ORDER BY created_at, id
`
