// Package prompts builds the instruction messages sent to the language model.
package prompts

// SchemaDescriptor describes the seeded dataset. It is embedded in every model
// call so the model validates and translates against the real schema rather
// than guessing table or column names.
const SchemaDescriptor = `The database is SQLite and contains exactly three tables:

TABLE categories
- id INTEGER PRIMARY KEY
- name TEXT NOT NULL UNIQUE

TABLE products
- id INTEGER PRIMARY KEY
- name TEXT NOT NULL UNIQUE
- category_id INTEGER NOT NULL REFERENCES categories(id)
- price REAL NOT NULL

TABLE sales
- id INTEGER PRIMARY KEY
- product_id INTEGER NOT NULL REFERENCES products(id)
- revenue REAL NOT NULL
- quantity_sold INTEGER NOT NULL
- sale_date TEXT NOT NULL (ISO date, e.g. '2024-01-15')

Sample contents:
- categories: Electronics, Clothing, Food
- products: Laptop (1200.00), Smartphone (800.00), Monitor (300.00), Headphones (75.00),
  Jacket (100.00), Keyboard (40.00), Jeans (50.00), T-Shirt (10.00), Coffee (5.00),
  Cheese (5.00), Bread (1.00) - each belonging to one of the categories above
- sales: one row per product with its revenue, quantity sold and sale date

The dataset is read-only: only data-retrieval questions can be answered.`
