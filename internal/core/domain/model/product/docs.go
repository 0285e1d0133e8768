// Package product provides the Product aggregate for the restaurant menu.
// Orders snapshot a product's name and price when they are created, so
// catalog edits only affect future orders.
package product
