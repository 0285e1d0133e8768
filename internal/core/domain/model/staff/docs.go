// Package staff provides the Staff aggregate for the restaurant's personnel
// directory. A staff member carries login credentials (as a bcrypt hash), a
// role, and an active flag; deliveries may only be driven by active members
// with the COURIER role.
package staff
