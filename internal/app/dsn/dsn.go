// Package dsn собирает строку подключения для выбранного драйвера базы.
package dsn

import (
	"fmt"
	"net"
	"strconv"

	"kanban/internal/app/config"

	"github.com/go-sql-driver/mysql"
)

func FromConfig(c config.DatabaseConfig) (string, error) {
	switch c.Driver {
	case config.DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode), nil
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Name
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	case config.DriverSQLite:
		if c.Path == "" {
			return "", fmt.Errorf("sqlite path is empty")
		}
		return c.Path, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}
