package seed

// Schema is the DDL for the three tables, one statement per entry, in
// creation order. Identifiers are unquoted so they fold to lower case,
// matching the statements the accessors generate.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS Customers (
	CustomerID   varchar(5)  PRIMARY KEY,
	CompanyName  varchar(40) NOT NULL,
	ContactName  varchar(30) NOT NULL DEFAULT '',
	ContactTitle varchar(30) NOT NULL DEFAULT '',
	Address      varchar(60) NOT NULL DEFAULT '',
	City         varchar(15) NOT NULL DEFAULT '',
	Region       varchar(15),
	PostalCode   varchar(10) NOT NULL DEFAULT '',
	Country      varchar(15) NOT NULL DEFAULT '',
	Phone        varchar(24) NOT NULL DEFAULT '',
	Fax          varchar(24)
)`,
	`CREATE TABLE IF NOT EXISTS Shippers (
	ShipperID   integer GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	CompanyName varchar(40) NOT NULL,
	Phone       varchar(24) NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS Products (
	ProductID       integer GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	ProductName     varchar(40)      NOT NULL,
	SupplierID      integer          NOT NULL DEFAULT 0,
	CategoryID      integer          NOT NULL DEFAULT 0,
	QuantityPerUnit varchar(20)      NOT NULL DEFAULT '',
	UnitPrice       double precision NOT NULL DEFAULT 0 CHECK (UnitPrice >= 0),
	UnitsInStock    integer          NOT NULL DEFAULT 0 CHECK (UnitsInStock >= 0),
	UnitsOnOrder    integer          NOT NULL DEFAULT 0 CHECK (UnitsOnOrder >= 0),
	ReorderLevel    integer          NOT NULL DEFAULT 0 CHECK (ReorderLevel >= 0),
	Discontinued    integer          NOT NULL DEFAULT 0
)`,
}
