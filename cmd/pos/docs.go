package main

// @title POS Backend API
// @version 1.0
// @description Inventory tracking and point-of-sale billing backend

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Checkout
// @tag.description Billing workflow endpoints

// @tag.name Stock
// @tag.description Stock ledger endpoints

// @tag.name Sales
// @tag.description Sales history endpoints

// @tag.name Users
// @tag.description Operator account endpoints

// @tag.name Health
// @tag.description Health check endpoints
