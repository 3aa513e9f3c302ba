/* models.go
 * This file contains the structs that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

type User struct {
	UserId   string
	Username string
}
